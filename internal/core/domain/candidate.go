package domain

// Candidate is a static catalog entry served read-only so clients render the
// gallery and ballot from the API instead of hardcoding names.
type Candidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description,omitempty"`
}

var Candidates = []Candidate{
	{ID: "bola-ahmed-tinubu", Name: "Bola Ahmed Tinubu", Party: "APC (All Progressives Congress)", Description: "Incumbent President (2023-present), former Lagos Governor"},
	{ID: "goodluck-jonathan", Name: "Goodluck Jonathan", Party: "PDP (Peoples Democratic Party)", Description: "Former President (2010-2015), South-South leader"},
	{ID: "peter-obi", Name: "Peter Obi", Party: "LP (Labour Party)", Description: "Former Anambra Governor, 2023 third-place finisher"},
	{ID: "atiku-abubakar", Name: "Atiku Abubakar", Party: "PDP (Peoples Democratic Party)", Description: "Former Vice President, six-time presidential contender"},
	{ID: "rabiu-kwankwaso", Name: "Rabiu Kwankwaso", Party: "NNPP (New Nigeria Peoples Party)", Description: "Former Kano Governor, Kwankwasiyya movement leader"},
	{ID: "nasir-el-rufai", Name: "Nasir El-Rufai", Party: "SDP (Social Democratic Party)", Description: "Former Kaduna Governor and FCT Minister"},
}

// Fixed enumerations backing the submission form. A submission naming a value
// outside these lists is rejected at validation.
var (
	KeyIssues = []string{
		"Economy & Job Creation",
		"Security & Safety",
		"Corruption & Governance",
		"Infrastructure Development",
		"Healthcare System",
		"Education Reform",
		"Agricultural Development",
		"Youth Empowerment",
	}

	AgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

	Regions = []string{
		"North Central",
		"North East",
		"North West",
		"South East",
		"South South",
		"South West",
	}

	Genders = []string{"Male", "Female", "Prefer not to say"}
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func ValidKeyIssue(v string) bool { return contains(KeyIssues, v) }
func ValidAgeGroup(v string) bool { return contains(AgeGroups, v) }
func ValidRegion(v string) bool   { return contains(Regions, v) }
func ValidGender(v string) bool   { return contains(Genders, v) }
