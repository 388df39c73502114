package engine

// Keyword taxonomies. Trigger phrases are stored ASCII-folded, the way
// Normalize leaves user input; canonical labels keep their diacritics
// because they are shown back to the user. Table order is significant:
// the first matching row wins.

type taxonomyRow struct {
	keywords []string
	label    string
}

var locationTable = []taxonomyRow{
	{[]string{"krkonose", "krkonos", "krkonosi", "spindleruv mlyn", "spindl", "harrachov", "pec pod snezkou", "pec pod snezk", "snezka", "rokytnice", "rokytnic"}, "Krkonoše"},
	{[]string{"beskydy", "beskyd", "pustevny", "pustevn", "radhost", "lysá hora", "lysa hora", "frenstat"}, "Beskydy"},
	{[]string{"sumava", "sumav", "lipno", "kvilda", "kvild", "zelezna ruda", "modrava"}, "Šumava"},
	{[]string{"jeseniky", "jesenik", "praded", "karlova studanka", "karlova studank"}, "Jeseníky"},
	{[]string{"cesky raj", "český ráj"}, "Český ráj"},
	{[]string{"vysocina", "vysočina"}, "Vysočina"},
	{[]string{"praha", "prague"}, "Praha"},
	{[]string{"brno"}, "Brno"},
	{[]string{"jizni morava", "jizni morav", "palava", "lednice", "valtice", "mikulov"}, "Jižní Morava"},
	{[]string{"orlicke hory", "orlicke hor", "destne", "ricky"}, "Orlické hory"},
}

var peopleTwoKeywords = []string{
	"s partnerkou", "s partnerem", "s manzelkou", "s manzelem",
	"s pritelkyni", "s pritelem", "s frajerkou", "s frajerem",
	"s kamaradkou", "s kamaradem", "s kolegyni", "s kolegou",
	"ve dvou", "pro dva", "pro dve", "dva lidi", "dve osoby",
	"2 osoby", "2 lidi", "ja a partner", "ja a manz", "ja s partner",
	"jedeme ve dvou", "jedeme spolu", "jsme dva", "jsme dve",
	"ja a on", "ja a ona", "ja s nim", "ja s ni",
}

var peopleOneKeywords = []string{
	"sam", "sama", "solo", "jen ja", "jedna osoba", "1 osoba",
	"jednoho", "single", "ja sam", "ja sama", "jedu sam", "jedu sama",
	"pojedu sam", "pojedu sama",
}

var peopleFamilyKeywords = []string{
	"s detmi", "s rodinou", "rodina", "rodinny", "rodinn",
	"s ditetem", "cela rodina", "rodice a det", "s malym", "s malou",
	"rodinne", "s nasima detma", "s nasi rodinou",
}

// Spelled-out Czech numbers with their common case endings.
var spelledNumberTable = []struct {
	keywords []string
	value    int
}{
	{[]string{"dva", "dve", "dvou", "dvema"}, 2},
	{[]string{"tri", "trech", "tremi", "trem"}, 3},
	{[]string{"ctyri", "ctyr", "ctyrech", "ctyrmi", "ctyrem"}, 4},
	{[]string{"pet", "peti", "petice"}, 5},
	{[]string{"sest", "sesti"}, 6},
	{[]string{"sedm", "sedmi"}, 7},
	{[]string{"osm", "osmi"}, 8},
}

var monthKeywords = []string{
	"leden", "unor", "brezen", "duben", "kveten", "cerven",
	"cervenec", "srpen", "zari", "rijen", "listopad", "prosinec",
	"ledna", "unora", "brezna", "dubna", "kvetna", "cervna",
	"cervence", "srpna", "zari", "rijna", "listopadu", "prosince",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var relativeTimeKeywords = []string{
	"pristi vikend", "tento vikend", "pristi tyden", "tento tyden",
	"za tyden", "za dva tydny", "za mesic", "za 14 dni", "za ctrnact dni",
	"zitra", "pozitri", "dneska", "dnes", "co nejdriv", "hned",
	"brzy", "v brzke dobe",
}

var seasonKeywords = []string{
	"jaro", "leto", "podzim", "zima",
	"jarni", "letni", "podzimni", "zimni",
	"prazdniny", "prazdnin", "svatky", "svatk",
	"velikonoce", "velikonoc", "vanoce", "vanoc", "silvestr",
	"o prazdninach", "behem leta", "behem prazdnin",
	"na jare", "na podzim", "v lete", "v zime",
}

var anytimeKeywords = []string{
	"kdykoliv", "kdykoli", "nemam termin", "bez terminu", "nezalezi na terminu",
}

var mealsTable = []taxonomyRow{
	{[]string{"plna penze", "plnou penzi", "plna penzi", "plnou penz", "full board", "trikrat denne", "3x denne", "snidane obed vecere"}, "plná penze"},
	{[]string{"polopenze", "polopenzi", "polopenz", "half board", "snidane a vecere", "snidane vecere", "rano a vecer", "rano vecer"}, "polopenze"},
	{[]string{"snidane", "se snidani", "vcetne snidane", "jen snidani", "snidanovy", "rano jidlo", "ranni jidlo"}, "se snídaní"},
	{[]string{"vlastni stravovani", "bez stravy", "bez stravovani", "stravovani vlastni", "sam si", "sami si", "bez jidla", "neresim stravu", "jidlo nepotrebuju", "varime si", "uvarime si", "strava vlastni", "vlastni strava"}, "vlastní stravování"},
	{[]string{"all inclusive", "all-inclusive", "all in", "vse v cene", "vsechno v cene", "vsetko v cene"}, "all inclusive"},
}

var amenityTable = []taxonomyRow{
	{[]string{"bazen", "bazenu", "bazene", "plavani", "aquapark", "tobogan", "vodni", "plavecky"}, "bazén"},
	{[]string{"wellness", "spa", "relaxace", "relaxacni", "odpocinek", "odpocinkovy", "virivka", "virivku", "sauna", "saunu", "sauny", "masaz", "masaze", "masazni", "parnich lazni", "parni lazne", "whirlpool"}, "wellness"},
	{[]string{"detsky koutek", "detsky kout", "herna", "pro deti", "detske hriste", "animacni program", "detsky bazen", "detska zona", "pro male deti"}, "dětský koutek"},
	{[]string{"pet friendly", "pet-friendly", "se psem", "se psy", "se zviret", "mazlicek", "mazlick", "pejsek", "pejsk", "psa", "zvire", "domaci zvirat", "se zviratem"}, "pet friendly"},
	{[]string{"restaurace", "restauraci", "stravovani na miste", "jidelna", "bufet"}, "restaurace"},
	{[]string{"parkovani", "parkovan", "parking", "garaz", "garaze", "misto na auto", "parkoviste"}, "parkování"},
	{[]string{"fitness", "posilovna", "posilovn", "gym", "kardio", "cviceni"}, "fitness"},
	{[]string{"wifi", "internet", "pripojeni"}, "WiFi"},
	{[]string{"klimatizace", "klimatizac", "klima"}, "klimatizace"},
}

var dontCareKeywords = []string{
	"je mi to jedno", "jedno", "nezalezi", "neres", "neresim",
	"cokoliv", "cokoli", "jakkoliv", "jakkoli", "jakekoli", "jakykoli",
	"uplne jedno", "fakt jedno", "vsechno", "nemusí", "nemusi",
	"nemam preferenc", "nemam pozadav", "bez preference",
	"neni to dulezite", "neni dulezite", "nevadi", "necham na tobe",
	"vyber sam", "vyber ty", "je to fuk", "neni podstatne",
	"bez narok", "zadne narok", "nic specialni", "nic extra",
}

var activityRequestKeywords = []string{
	"vylet v okoli", "vylety v okoli", "co delat v okoli", "co je v okoli",
	"co navstivit", "co se da delat", "kam na vylet", "tipy na vylet",
	"tipy na vylety", "zajimavosti v okoli", "pamatky v okoli", "co videt",
	"co podniknout", "aktivity v okoli", "kam zajit", "co stoji za to",
	"co je pobliz", "co se da videt", "kam na prochazku", "kam na turu",
	"turisticke trasy", "rozhledna", "rozhledny", "muzeum", "hrad", "zamek",
	"co navstivit v okoli", "vylety pobliz", "kam v okoli",
	"co se da podniknout", "doporucis vylet", "doporuc mi vylet",
	"jake jsou vylety", "jake jsou aktivity", "kam na vychazku",
	"chci vylety", "chci vylet", "vylety", "aktivity", "co v okoli",
	"chci vylety v okoli", "ukazat vylety", "ukaz vylety",
}

var stayRequestKeywords = []string{
	"nabidky pobytu", "pobyty", "ubytovani", "hotel", "hotely",
	"dalsi pobyty", "jine pobyty", "ukaz pobyty", "chci pobyt",
	"chci pobyty", "nabidky ubytovani", "zpet na pobyty", "pobytove nabidky",
	"dovolena", "dovolenou", "chci ubytovani", "ukazat pobyty",
	"nabidky hotelu", "dalsi nabidky pobytu", "jine hotely",
}

var travelIntentKeywords = []string{
	"hotel", "ubytovani", "dovolena", "dovolenou", "pobyt", "pobytovy",
	"chata", "chalupa", "wellness", "hory", "cestovani", "vylet",
	"chci jet", "jedeme", "planuji", "planujeme", "hledam", "hledame",
	"chci vyrazit", "chteli bychom", "chtel bych", "chtela bych",
	"radi bychom", "rada bych", "zajima me", "zajimaji me",
	"potrebuji", "potrebujeme", "objednat", "zarezervovat",
	"kam jet", "kde bydlet", "kde spat",
	"krkonose", "beskydy", "sumava", "jeseniky",
}

var dealTalkKeywords = []string{
	"nabidka", "nabidky", "cena", "ceny", "sleva", "slevy",
	"kolik stoji", "kolik to stoji", "za kolik", "levnejsi", "drazsi",
	"recenze", "hodnoceni", "hvezdicky", "jak hodnotite",
	"objednat", "rezervovat", "koupit", "zaplatit",
	"dalsi nabidky", "jine nabidky", "vice moznosti",
	"libi", "nelibi", "zaujalo", "nezaujalo",
}

var nameQuestionKeywords = []string{
	"jak se jmenujes", "tve jmeno", "tvoje jmeno", "kdo jsi", "jak ti rikaji",
}

var howIRecommendKeywords = []string{
	"jak jsi doporucil", "jak jsi vybral", "jak jsi vybiral",
	"na zaklade ceho", "podle ceho", "jak vybiras", "proc zrovna",
	"jak to vybiras", "jak doporucujes", "z ceho cerpas",
	"odkud beres", "odkud mas", "odkud to vis", "jak to vis",
	"proc tyto nabidky", "proc zrovna tyto", "proc zrovna tyhle",
	"jak jsi je vybral", "jak jsi je nasel", "na cem to stavis",
	"co je zdrojem", "jaky je zdroj", "kde beres informace",
	"kde cerpas", "jak doporucujes", "jak ses rozhodl",
	"proc zrovna tohle", "jak je hodnotis", "jak vyhodnocujes",
}

var complaintKeywords = []string{
	"reklamace", "reklamaci", "reklamovat", "reklamuju", "reklamuji",
	"chci reklamovat", "potrebuji reklamaci", "pomoz s reklamaci",
	"reklamacni", "reklamacni rizeni", "vratit penize", "vraceni penez",
}

var helpKeywords = []string{
	"co umis", "pomoc", "help", "co delas", "jak fungujes", "co jsi",
	"co vse umis", "co muzes", "co dokazes", "co zvladnes",
}

var thanksKeywords = []string{
	"dekuji", "diky", "dik", "dikes", "moc dik", "super dik", "diky moc", "dekuju",
}

var moreOffersKeywords = []string{
	"dalsi nabidky", "jine nabidky", "neco jineho", "dalsi moznosti",
	"vice moznosti", "zkus jine", "ukaz dalsi", "jeste dalsi",
	"nemas jine", "vic nabidek", "jeste neco", "ukazat jine",
}

var praiseKeywords = []string{
	"super", "parada", "skvele", "nadhera", "krasne", "perfektni", "top", "to se mi libi",
}
