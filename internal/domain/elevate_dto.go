package domain

// ElevateResponse is the Elevate Live Links programs payload. Every record is
// wrapped in a single-key object named after its type.
type ElevateResponse struct {
	Programs *[]ElevateProgramEnvelope `json:"programs"`
}

// ElevateProgramEnvelope wraps a program record.
type ElevateProgramEnvelope struct {
	Program ElevateProgram `json:"program"`
}

// ElevateProgram is a program in the Elevate response.
type ElevateProgram struct {
	ID                  FlexString                `json:"id"`
	Title               string                    `json:"programTitle"`
	InstructionalMethod *ElevateTitled            `json:"instructionalMethod"`
	ProgramInstances    []ElevateInstanceEnvelope `json:"programInstances"`
}

// ElevateInstanceEnvelope wraps a program instance record.
type ElevateInstanceEnvelope struct {
	ProgramInstance ElevateProgramInstance `json:"programInstance"`
}

// ElevateTitled is any {code,title} sub-record (status, instructional method).
type ElevateTitled struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// ElevateCourseStream is the group reference embedded in an instance.
type ElevateCourseStream struct {
	ID    FlexString `json:"id"`
	Code  string     `json:"code"`
	Title string     `json:"title"`
}

// ElevateProgramInstance is a program instance in the Elevate response.
type ElevateProgramInstance struct {
	ID                  FlexString               `json:"id"`
	Code                string                   `json:"code"`
	ProgramInstanceID   string                   `json:"programInstanceID"`
	Title               string                   `json:"programInstanceTitle"`
	SummaryBrief        *string                  `json:"programInstanceSummaryBrief"`
	SummaryLong         *string                  `json:"programInstanceSummaryLong"`
	Fee                 float64                  `json:"fee"`
	Credits             float64                  `json:"credits"`
	PlacesLeft          int                      `json:"placesLeft"`
	WaitlistPlacesLeft  int                      `json:"waitlistPlacesLeft"`
	Status              *ElevateTitled           `json:"status"`
	InstructionalMethod *ElevateTitled           `json:"instructionalMethod"`
	CourseStream        *ElevateCourseStream     `json:"courseStream"`
	Services            []ElevateServiceEnvelope `json:"services"`
	Sections            []ElevateSectionEnvelope `json:"sections"`
}

// ElevateServiceEnvelope wraps a service record. The registration window dates
// are sometimes carried on the envelope rather than the service itself.
type ElevateServiceEnvelope struct {
	Service   ElevateService `json:"service"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
}

// ElevateService is an online service enabled for an instance.
type ElevateService struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ElevateSectionEnvelope wraps a section record.
type ElevateSectionEnvelope struct {
	Section ElevateSection `json:"section"`
}

// ElevateSection is a section in the Elevate response.
type ElevateSection struct {
	ID           FlexString                `json:"id"`
	SectionID    string                    `json:"sectionID"`
	Title        string                    `json:"sectionTitle"`
	SummaryBrief *string                   `json:"sectionSummaryBrief"`
	SummaryLong  *string                   `json:"sectionSummaryLong"`
	Credits      float64                   `json:"credits"`
	Fees         []ElevateFeeEnvelope      `json:"fees"`
	Tutorials    []ElevateTutorialEnvelope `json:"tutorials"`
}

// ElevateFeeEnvelope wraps a fee record.
type ElevateFeeEnvelope struct {
	Fee ElevateFee `json:"fee"`
}

// ElevateFee is a section fee.
type ElevateFee struct {
	Amount float64 `json:"amount"`
}

// ElevateTutorialEnvelope wraps a tutorial (class meeting) record.
type ElevateTutorialEnvelope struct {
	Tutorial ElevateTutorial `json:"tutorial"`
}

// ElevateTutorial is a scheduled class meeting.
type ElevateTutorial struct {
	DaysOfTheWeek string `json:"daysOfTheWeek"`
	TutorialTime  string `json:"tutorialtime"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Tutor         string `json:"tutor"`
}
