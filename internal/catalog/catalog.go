package catalog

// Subject is one of the six fixed LGS branches, with its question count and
// the topic labels students can tag records with. The table is compiled in;
// it is not fetched from anywhere.
type Subject struct {
	Name         string   `json:"name"`
	MaxQuestions int      `json:"max_questions"`
	Topics       []string `json:"topics"`
}

// Canonical subject names, as they appear on the exam sheet.
const (
	SubjectTurkish  = "Türkçe"
	SubjectMath     = "Matematik"
	SubjectScience  = "Fen Bilimleri"
	SubjectHistory  = "T.C. İnkılap Tarihi"
	SubjectReligion = "Din Kültürü"
	SubjectForeign  = "İngilizce"
)

// DefaultMaxQuestions is used for subjects outside the fixed six; practice
// records carry an open-set subject name.
const DefaultMaxQuestions = 20

var subjects = []Subject{
	{
		Name:         SubjectTurkish,
		MaxQuestions: 20,
		Topics: []string{
			"Sözcükte Anlam", "Cümlede Anlam", "Paragraf", "Fiilimsiler",
			"Cümlenin Ögeleri", "Yazım Kuralları", "Noktalama İşaretleri", "Söz Sanatları",
		},
	},
	{
		Name:         SubjectMath,
		MaxQuestions: 20,
		Topics: []string{
			"Çarpanlar ve Katlar", "Üslü İfadeler", "Kareköklü İfadeler", "Veri Analizi",
			"Olasılık", "Cebirsel İfadeler", "Doğrusal Denklemler", "Eşitsizlikler",
			"Üçgenler", "Dönüşüm Geometrisi",
		},
	},
	{
		Name:         SubjectScience,
		MaxQuestions: 20,
		Topics: []string{
			"Mevsimler ve İklim", "DNA ve Genetik Kod", "Basınç", "Madde ve Endüstri",
			"Basit Makineler", "Enerji Dönüşümleri", "Elektrik Yükleri",
		},
	},
	{
		Name:         SubjectHistory,
		MaxQuestions: 10,
		Topics: []string{
			"Bir Kahraman Doğuyor", "Milli Uyanış", "Milli Bir Destan",
			"Atatürkçülük", "Demokratikleşme Çabaları",
		},
	},
	{
		Name:         SubjectReligion,
		MaxQuestions: 10,
		Topics: []string{
			"Kader İnancı", "Zekât ve Sadaka", "Din ve Hayat", "Hz. Muhammed'in Örnekliği",
		},
	},
	{
		Name:         SubjectForeign,
		MaxQuestions: 10,
		Topics: []string{
			"Friendship", "Teen Life", "In the Kitchen", "On the Phone",
			"The Internet", "Adventures",
		},
	},
}

// Subjects returns the full fixed table in exam-sheet order.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// Find looks up a subject by its canonical name.
func Find(name string) (Subject, bool) {
	for _, s := range subjects {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// MaxFor returns the question count used to clamp entry-form counts for a
// subject, falling back to DefaultMaxQuestions for unknown subjects.
func MaxFor(name string) int {
	if s, ok := Find(name); ok {
		return s.MaxQuestions
	}
	return DefaultMaxQuestions
}

// TopicsFor returns the topic labels for a subject, nil when unknown.
func TopicsFor(name string) []string {
	if s, ok := Find(name); ok {
		return s.Topics
	}
	return nil
}
