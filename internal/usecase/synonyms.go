package usecase

// foodSynonyms maps a canonical Ukrainian food term to the stem
// fragments used for declension-tolerant matching. The fragments are
// substrings, not necessarily stand-alone words: "куряч" matches
// "Куряча", "курячої", "курячим" and so on. Keys are lowercase; lookup
// happens after normalization. The expander also consults keys by
// prefix, so a clipped query like "кур" still reaches "курка".
//
// This is configuration data, not logic. Every expansion set must stay
// non-empty.
var foodSynonyms = map[string][]string{
	// Meat and poultry
	"курка":      {"куряч", "курят", "курк", "курон"},
	"куряча":     {"куряч", "курк", "курят"},
	"курча":      {"курч", "куряч", "курк"},
	"філе":       {"філе", "філей"},
	"грудка":     {"грудк", "грудин"},
	"індичка":    {"індич", "індик"},
	"індик":      {"індич", "індик"},
	"яловичина":  {"яловнич", "ялович", "телят"},
	"телятина":   {"телят", "ялович"},
	"свинина":    {"свин", "свиняч"},
	"свиняча":    {"свин", "свиняч"},
	"баранина":   {"баран", "ягня"},
	"ягня":       {"ягня", "ягнят", "баран"},
	"кролик":     {"кролик", "кроляч", "кріл"},
	"качка":      {"качк", "качин"},
	"гуска":      {"гуск", "гусяч"},
	"печінка":    {"печінк", "печіноч"},
	"серце":      {"серц", "сердеч"},
	"фарш":       {"фарш", "фарше"},
	"ковбаса":    {"ковбас", "сосиск", "сардель"},
	"сосиска":    {"сосиск", "ковбас", "сардель"},
	"сарделька":  {"сардель", "сосиск"},
	"шинка":      {"шинк", "шинов"},
	"бекон":      {"бекон", "грудин"},
	"сало":       {"сал", "сальц"},
	"котлета":    {"котлет", "битк"},
	"відбивна":   {"відбивн", "котлет"},
	"шашлик":     {"шашлик", "шашлич"},
	"стейк":      {"стейк", "відбивн"},
	"крильця":    {"крил", "крильц"},
	"гомілка":    {"гомілк", "стегн"},
	"стегно":     {"стегн", "гомілк"},
	"паштет":     {"паштет"},
	"буженина":   {"буженин"},
	"холодець":   {"холодц", "холодец", "драгл"},

	// Fish and seafood
	"риба":       {"риб", "рибн"},
	"лосось":     {"лосос", "сьомг", "семг"},
	"сьомга":     {"сьомг", "лосос", "семг"},
	"форель":     {"форел"},
	"тунець":     {"тунц", "тунець"},
	"оселедець":  {"оселедц", "оселедець"},
	"скумбрія":   {"скумбрі"},
	"хек":        {"хек", "хеков"},
	"минтай":     {"минта", "мінта"},
	"судак":      {"судак", "судач"},
	"короп":      {"короп", "карп", "коропов"},
	"щука":       {"щук", "щуч"},
	"сардина":    {"сардин"},
	"шпроти":     {"шпрот"},
	"креветка":   {"креветк", "креветоч"},
	"кальмар":    {"кальмар"},
	"мідія":      {"міді", "мідій"},
	"краб":       {"краб", "крабов"},
	"ікра":       {"ікр", "ікрян"},

	// Dairy and eggs
	"молоко":     {"молок", "молоч"},
	"молочний":   {"молоч", "молок"},
	"кефір":      {"кефір", "кефирн"},
	"ряжанка":    {"ряжанк", "ряженк"},
	"йогурт":     {"йогурт", "югурт"},
	"сметана":    {"сметан"},
	"вершки":     {"вершк", "вершков"},
	"сир":        {"сир", "сирн", "сиров", "творог"},
	"творог":     {"творог", "творож", "сир"},
	"бринза":     {"бринз"},
	"фета":       {"фет", "фетакс"},
	"моцарела":   {"моцарел", "мозарел"},
	"пармезан":   {"пармезан"},
	"масло":      {"масл", "маслян"},
	"маргарин":   {"маргарин"},
	"яйце":       {"яйц", "яєць", "яєч"},
	"яйця":       {"яйц", "яєць", "яєч"},
	"омлет":      {"омлет", "яєч"},
	"сироватка":  {"сироватк", "сироваточ"},
	"згущене":    {"згущен", "згущ"},

	// Grains, bread, pasta
	"хліб":       {"хліб", "хлібц", "булк", "батон"},
	"батон":      {"батон", "хліб", "булк"},
	"булка":      {"булк", "булоч", "хліб"},
	"лаваш":      {"лаваш"},
	"гречка":     {"греч", "гречан", "гречк"},
	"гречана":    {"гречан", "греч"},
	"рис":        {"рис", "рисов"},
	"пшоно":      {"пшон", "пшонян"},
	"пшениця":    {"пшенич", "пшениц"},
	"овес":       {"овес", "вівсян", "овсян"},
	"вівсянка":   {"вівсян", "овсян", "геркулес"},
	"геркулес":   {"геркулес", "вівсян"},
	"перловка":   {"перлов", "ячмін", "ячнев"},
	"ячмінь":     {"ячмін", "ячнев", "перлов"},
	"кукурудза":  {"кукурудз", "кукуруз"},
	"манка":      {"манк", "манн"},
	"булгур":     {"булгур"},
	"кускус":     {"кускус"},
	"кіноа":      {"кіно", "квіно"},
	"макарони":   {"макарон", "паст", "спагет", "локшин", "вермішел"},
	"спагеті":    {"спагет", "макарон", "паст"},
	"локшина":    {"локшин", "вермішел", "макарон"},
	"вермішель":  {"вермішел", "локшин"},
	"борошно":    {"борошн", "мук", "мучн"},
	"висівки":    {"висівк", "висівков"},
	"крупа":      {"круп", "крупи"},
	"каша":       {"каш", "кашк"},
	"мюслі":      {"мюсл", "гранол"},
	"гранола":    {"гранол", "мюсл"},
	"пластівці":  {"пластівц", "хлопь"},
	"сухарі":     {"сухар", "сухарик", "грінк"},
	"грінки":     {"грінк", "тост", "сухар"},
	"тост":       {"тост", "грінк"},

	// Vegetables and greens
	"картопля":   {"картопл", "картоф", "бульб"},
	"морква":     {"моркв", "морквян"},
	"буряк":      {"буряк", "бурячк", "свекл"},
	"капуста":    {"капуст", "капустян"},
	"броколі":    {"брокол"},
	"цвітна":     {"цвітн", "капуст"},
	"огірок":     {"огірк", "огіроч", "огірец"},
	"огірки":     {"огірк", "огіроч"},
	"помідор":    {"помідор", "томат"},
	"томат":      {"томат", "помідор"},
	"перець":     {"перц", "перець", "паприк"},
	"паприка":    {"паприк", "перц"},
	"цибуля":     {"цибул", "цибулин"},
	"часник":     {"часник", "часников"},
	"кабачок":    {"кабачк", "кабачок", "цукін"},
	"цукіні":     {"цукін", "кабачк"},
	"баклажан":   {"баклажан", "синеньк"},
	"гарбуз":     {"гарбуз", "гарбузов"},
	"редис":      {"редис", "редьк"},
	"редька":     {"редьк", "редис"},
	"селера":     {"селер"},
	"шпинат":     {"шпинат", "шпінат"},
	"салат":      {"салат", "латук", "айсберг"},
	"рукола":     {"рукол", "рукк"},
	"петрушка":   {"петрушк"},
	"кріп":       {"кріп", "кроп", "укроп"},
	"базилік":    {"базилік", "базілік"},
	"щавель":     {"щавел", "щавл"},
	"спаржа":     {"спарж"},
	"гриби":      {"гриб", "грибн", "печериц", "шампіньйон"},
	"печериці":   {"печериц", "шампіньйон", "гриб"},
	"глива":      {"глив", "гриб"},
	"горох":      {"горох", "горошк"},
	"квасоля":    {"квасол", "фасол"},
	"сочевиця":   {"сочевиц", "чечевиц"},
	"нут":        {"нут", "нутов"},
	"соя":        {"со", "соєв"},
	"боби":       {"боб", "бобов"},

	// Fruits and berries
	"яблуко":     {"яблук", "яблуч"},
	"яблука":     {"яблук", "яблуч"},
	"груша":      {"груш", "грушев"},
	"банан":      {"банан"},
	"апельсин":   {"апельсин", "помаранч"},
	"мандарин":   {"мандарин"},
	"лимон":      {"лимон"},
	"лайм":       {"лайм"},
	"грейпфрут":  {"грейпфрут"},
	"ківі":       {"ків"},
	"ананас":     {"ананас"},
	"манго":      {"манг"},
	"персик":     {"персик"},
	"нектарин":   {"нектарин", "персик"},
	"абрикос":    {"абрикос"},
	"слива":      {"слив", "сливов"},
	"вишня":      {"вишн", "вишнев", "черешн"},
	"черешня":    {"черешн", "вишн"},
	"виноград":   {"виноград", "ізюм", "родзинк"},
	"родзинки":   {"родзинк", "ізюм", "виноград"},
	"полуниця":   {"полуниц", "полунич", "клубнік"},
	"суниця":     {"суниц", "полуниц"},
	"малина":     {"малин"},
	"ожина":      {"ожин"},
	"чорниця":    {"чорниц", "чорнич", "лохин"},
	"лохина":     {"лохин", "чорниц"},
	"смородина":  {"смородин", "порічк"},
	"порічки":    {"порічк", "смородин"},
	"аґрус":      {"аґрус", "агрус"},
	"журавлина":  {"журавлин", "клюкв"},
	"обліпиха":   {"обліпих"},
	"кавун":      {"кавун"},
	"диня":       {"дин", "динн"},
	"гранат":     {"гранат"},
	"хурма":      {"хурм"},
	"інжир":      {"інжир", "фіг"},
	"фінік":      {"фінік"},
	"авокадо":    {"авокад"},

	// Nuts and seeds
	"горіх":      {"горіх", "горіш"},
	"горіхи":     {"горіх", "горіш"},
	"волоський":  {"волоськ", "горіх"},
	"арахіс":     {"арахіс", "арахис"},
	"мигдаль":    {"мигдал", "міндал"},
	"фундук":     {"фундук", "лісов"},
	"кешʼю":      {"кеш", "кешью"},
	"фісташки":   {"фісташ", "фисташ"},
	"насіння":    {"насінн", "сімʼя", "семечк"},
	"соняшник":   {"соняшник", "соняшников", "семечк"},
	"кунжут":     {"кунжут", "сезам"},
	"льон":       {"льон", "лльон", "льнян"},
	"чіа":        {"чіа", "чиа"},
	"гарбузове":  {"гарбузов", "насінн"},

	// Sweets and baking
	"цукор":      {"цукор", "цукров", "сахар"},
	"мед":        {"мед", "медов"},
	"шоколад":    {"шоколад", "шоколадн", "какао"},
	"какао":      {"какао", "шоколад"},
	"цукерка":    {"цукерк", "цукероч", "конфет"},
	"цукерки":    {"цукерк", "конфет"},
	"печиво":     {"печив", "печен", "галет", "крекер"},
	"крекер":     {"крекер", "галет", "печив"},
	"вафлі":      {"вафл", "вафел"},
	"пряник":     {"пряник", "пряніч"},
	"торт":       {"торт", "тортик"},
	"тістечко":   {"тістечк", "пирожн"},
	"кекс":       {"кекс", "мафін", "маффін"},
	"мафін":      {"мафін", "маффін", "кекс"},
	"круасан":    {"круасан", "круассан"},
	"булочка":    {"булоч", "булк"},
	"пиріг":      {"пиріг", "пирог", "пиріжк"},
	"пиріжок":    {"пиріжк", "пиріг"},
	"млинці":     {"млинц", "млинець", "налисник", "блин"},
	"налисники":  {"налисник", "млинц"},
	"оладки":     {"оладк", "оладуш"},
	"сирники":    {"сирник", "сирнич"},
	"вареники":   {"вареник", "варенич"},
	"пельмені":   {"пельмен"},
	"галушки":    {"галушк", "галушоч"},
	"зефір":      {"зефір"},
	"мармелад":   {"мармелад"},
	"халва":      {"халв"},
	"варення":    {"варенн", "джем", "повидл", "конфітюр"},
	"джем":       {"джем", "варенн", "конфітюр"},
	"повидло":    {"повидл", "варенн"},
	"морозиво":   {"морозив", "пломбір"},
	"пломбір":    {"пломбір", "морозив"},
	"десерт":     {"десерт"},

	// Drinks
	"вода":       {"вод", "водичк"},
	"сік":        {"сік", "соков", "фреш"},
	"фреш":       {"фреш", "сік"},
	"компот":     {"компот", "узвар"},
	"узвар":      {"узвар", "компот"},
	"морс":       {"морс"},
	"чай":        {"чай", "чайн"},
	"кава":       {"кав", "кавов", "кофе", "еспресо", "капучино", "лате"},
	"еспресо":    {"еспресо", "кав"},
	"капучино":   {"капучино", "капучін", "кав"},
	"лате":       {"лате", "латте", "кав"},
	"квас":       {"квас", "квасн"},
	"лимонад":    {"лимонад"},
	"смузі":      {"смузі", "смуззі"},
	"коктейль":   {"коктейл"},
	"пиво":       {"пив", "пивн"},
	"вино":       {"вин", "винн"},

	// Dishes and prepared food
	"борщ":       {"борщ", "борщик"},
	"суп":        {"суп", "супчик", "юшк", "бульйон"},
	"юшка":       {"юшк", "суп", "бульйон"},
	"бульйон":    {"бульйон", "юшк", "суп"},
	"солянка":    {"солянк"},
	"розсольник": {"розсольник", "розсол"},
	"окрошка":    {"окрошк"},
	"плов":       {"плов", "плав"},
	"голубці":    {"голубц", "голубець"},
	"деруни":     {"дерун", "драник"},
	"запіканка":  {"запіканк", "запечен"},
	"рагу":       {"рагу", "тушков"},
	"піца":       {"піц", "пицц", "піцц"},
	"бургер":     {"бургер", "гамбургер", "чізбургер"},
	"гамбургер":  {"гамбургер", "бургер"},
	"сендвіч":    {"сендвіч", "сандвіч", "бутерброд"},
	"бутерброд":  {"бутерброд", "сендвіч", "канапк"},
	"канапка":    {"канапк", "бутерброд"},
	"шаурма":     {"шаурм", "шаверм", "донер"},
	"хотдог":     {"хотдог", "хот-дог"},
	"суші":       {"суші", "суш", "рол"},
	"роли":       {"рол", "суші"},
	"крабові":    {"крабов", "краб"},
	"чипси":      {"чипс"},
	"попкорн":    {"попкорн"},
	"сухарики":   {"сухарик", "сухар", "грінк"},
	"батончик":   {"батончик", "батон"},
	"снек":       {"снек", "снеков"},

	// Condiments and pantry
	"олія":       {"олі", "олійк", "масл"},
	"оливкова":   {"оливков", "олі"},
	"соняшникова": {"соняшников", "олі"},
	"оцет":       {"оцет", "оцтов"},
	"сіль":       {"сіль", "солон", "сол"},
	"майонез":    {"майонез"},
	"кетчуп":     {"кетчуп", "томатн"},
	"гірчиця":    {"гірчиц", "гірчич"},
	"соус":       {"соус"},
	"аджика":     {"аджик"},
	"хрін":       {"хрін", "хрон"},
	"імбир":      {"імбир", "имбир"},
	"кориця":     {"кориц", "коричн"},
	"ваніль":     {"ваніл", "ванільн"},
	"дріжджі":    {"дріждж", "дрожж"},
	"желатин":    {"желатин"},
	"крохмаль":   {"крохмал"},

	// Protein and diet products
	"протеїн":    {"протеїн", "протеин", "білков"},
	"білок":      {"білк", "білков", "протеїн"},
	"казеїн":     {"казеїн", "казеин"},
	"гейнер":     {"гейнер"},
	"ізолят":     {"ізолят", "изолят"},
	"креатин":    {"креатин"},
	"тофу":       {"тофу", "соєв"},
	"соєве":      {"соєв", "со"},
	"знежирений": {"знежирен", "нежирн", "дієтичн"},
	"дієтичний":  {"дієтичн", "знежирен", "легк"},
	"цільнозерновий": {"цільнозернов", "цільн", "зернов"},
	"безглютеновий":  {"безглютен", "глютен"},
	"веганський": {"веган", "рослинн"},
	"вегетаріанський": {"вегетаріан", "рослинн"},
}
