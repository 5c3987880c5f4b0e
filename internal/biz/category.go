package biz

// Category is the closed set of catalog sections a movie is filed under.
type Category string

const (
	CategorySerial      Category = "serial"
	CategoryTarjimaKino Category = "tarjima_kino"
	CategoryPremyera    Category = "premyera"
	CategoryKlassika    Category = "klassika"
	CategoryYangilik    Category = "yangilik"
	CategoryEngYaxshi   Category = "eng_yaxshi"
	CategoryMultfilm    Category = "multfilm"
	CategoryHind        Category = "hind"
	CategoryUzbekKino   Category = "uzbek_kino"
	CategoryKoreys      Category = "koreys"
	CategoryTurk        Category = "turk"
	CategoryRus         Category = "rus"
	CategoryAnime       Category = "anime"
	CategoryHujjatli    Category = "hujjatli"
	CategoryKomediya    Category = "komediya"
	CategoryDrama       Category = "drama"
	CategoryJangari     Category = "jangari"
	CategoryQorqinchli  Category = "qorqinchli"
	CategoryFantastika  Category = "fantastika"
	CategoryTarixiy     Category = "tarixiy"
	CategorySarguzasht  Category = "sarguzasht"
	CategoryDetektiv    Category = "detektiv"
	CategoryMelodrama   Category = "melodrama"
	CategoryTriller     Category = "triller"
	CategoryOilaviy     Category = "oilaviy"
	CategorySport       Category = "sport"
	CategoryMusiqiy     Category = "musiqiy"
	CategoryBiografik   Category = "biografik"
	CategoryHarbiy      Category = "harbiy"
	CategoryKriminal    Category = "kriminal"
	CategoryMultserial  Category = "multserial"
)

// DefaultCategory is assigned to movies created without one.
const DefaultCategory = CategoryYangilik

var categories = []struct {
	value Category
	label string
}{
	{CategorySerial, "Serial"},
	{CategoryTarjimaKino, "Tarjima Kino"},
	{CategoryPremyera, "Premyera"},
	{CategoryKlassika, "Klassika"},
	{CategoryYangilik, "Yangilik"},
	{CategoryEngYaxshi, "Eng Yaxshi"},
	{CategoryMultfilm, "Multfilm"},
	{CategoryHind, "Hind Kino"},
	{CategoryUzbekKino, "O'zbek Kino"},
	{CategoryKoreys, "Koreys Kino"},
	{CategoryTurk, "Turk Kino"},
	{CategoryRus, "Rus Kino"},
	{CategoryAnime, "Anime"},
	{CategoryHujjatli, "Hujjatli"},
	{CategoryKomediya, "Komediya"},
	{CategoryDrama, "Drama"},
	{CategoryJangari, "Jangari"},
	{CategoryQorqinchli, "Qo'rqinchli"},
	{CategoryFantastika, "Fantastika"},
	{CategoryTarixiy, "Tarixiy"},
	{CategorySarguzasht, "Sarguzasht"},
	{CategoryDetektiv, "Detektiv"},
	{CategoryMelodrama, "Melodrama"},
	{CategoryTriller, "Triller"},
	{CategoryOilaviy, "Oilaviy"},
	{CategorySport, "Sport"},
	{CategoryMusiqiy, "Musiqiy"},
	{CategoryBiografik, "Biografik"},
	{CategoryHarbiy, "Harbiy"},
	{CategoryKriminal, "Kriminal"},
	{CategoryMultserial, "Multserial"},
}

var categoryLabels = func() map[Category]string {
	m := make(map[Category]string, len(categories))
	for _, c := range categories {
		m[c.value] = c.label
	}
	return m
}()

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.value)
	}
	return out
}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := categoryLabels[c]
	return c, ok
}

// Valid reports whether c is one of the known categories. Rows written before
// a category was retired keep their raw value and are not valid.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the display name, empty for unknown values.
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) String() string {
	return string(c)
}
