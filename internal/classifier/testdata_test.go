package classifier

import "github.com/heartmarshall/vocabtrainer/internal/domain"

// vocabularyRows is a small hand-made vocabulary in the five-column layout
// Eng, engT, EngEx, Rus, RusEx, preceded by a row number column.
var vocabularyRows = [][]string{
	{"1", "apple", "[ˈæpl]", "she ate an apple after lunch", "яблоко", "зелёное яблоко"},
	{"2", "river", "[ˈrɪvə]", "we swam across the river yesterday", "река", "мы переплыли реку вчера"},
	{"3", "window", "[ˈwɪndəʊ]", "please close the window now", "окно", "закрой окно"},
	{"4", "garden", "[ˈɡɑːdn]", "my grandmother grows roses in her garden", "сад", "бабушка сажает розы в саду"},
	{"5", "candle", "[ˈkændl]", "he lit a candle in the dark", "свеча", "горит свеча"},
	{"6", "bridge", "[brɪʤ]", "the old bridge was closed for repairs", "мост", "старый мост закрыли на ремонт"},
	{"7", "pocket", "[ˈpɒkɪt]", "keep the keys in your pocket", "карман", "ключи в кармане"},
	{"8", "silver", "[ˈsɪlvə]", "the spoon is made of silver", "серебро", "ложка из серебра"},
	{"9", "thunder", "[ˈθʌndə]", "we heard thunder all night long", "гром", "всю ночь гремел гром"},
	{"10", "market", "[ˈmɑːkɪt]", "they sell fresh fish at the market", "рынок", "свежая рыба на рынке"},
	{"11", "ladder", "[ˈlædə]", "climb the ladder very carefully", "лестница", "высокая лестница"},
	{"12", "orange", "[ˈɒrɪnʤ]", "would you like some orange juice", "апельсин", "хочешь апельсиновый сок"},
	{"13", "pillow", "[ˈpɪləʊ]", "the cat sleeps on my pillow", "подушка", "мягкая подушка"},
	{"14", "forest", "[ˈfɒrɪst]", "wolves live deep in the forest", "лес", "волки живут в лесу"},
	{"15", "engine", "[ˈenʤɪn]", "the engine makes a strange noise", "двигатель", "двигатель странно шумит"},
	{"16", "mirror", "[ˈmɪrə]", "she looked at herself in the mirror", "зеркало", "она посмотрела в зеркало"},
	{"17", "basket", "[ˈbɑːskɪt]", "put the bread into the basket", "корзина", "хлеб в корзине"},
	{"18", "castle", "[ˈkɑːsl]", "the king lived in a castle", "замок", "король жил в замке"},
	{"19", "feather", "[ˈfeðə]", "a feather fell from the sky", "перо", "белое перо"},
	{"20", "harbor", "[ˈhɑːbə]", "ships wait in the harbor today", "гавань", "корабли ждут в гавани"},
	{"21", "island", "[ˈaɪlənd]", "they spent a week on an island", "остров", "неделя на острове"},
	{"22", "jacket", "[ˈʤækɪt]", "take a warm jacket with you", "куртка", "возьми тёплую куртку"},
	{"23", "kettle", "[ˈketl]", "the kettle is boiling again", "чайник", "чайник снова кипит"},
	{"24", "lemon", "[ˈlemən]", "add a slice of lemon to the tea", "лимон", "чай с лимоном"},
}

func vocabularyTable() domain.Table { return domain.TableFromStrings(vocabularyRows) }

// repeatRow builds a table of n identical rows.
func repeatRow(n int, row ...string) domain.Table {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = row
	}
	return domain.TableFromStrings(rows)
}
