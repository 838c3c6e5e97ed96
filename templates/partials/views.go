package partials

// Issuer is the commissioning party printed on every contract
type Issuer struct {
	Address        string
	Company        string
	Representative string
}

// DefaultIssuer is the 甲 of the contract
var DefaultIssuer = Issuer{
	Address:        "大阪府大阪市北区紅梅町1-18ERGOビル3F",
	Company:        "株式会社OFFSTYLE",
	Representative: "代表取締役 菊池 顕",
}

// ContractView holds display-ready values for the contract document.
// Blank fields already carry their placeholder.
type ContractView struct {
	SurfaceID string
	Offscreen bool

	CreatedDate        string
	RecipientName      string
	RecipientInline    string
	SignatureName      string
	Purpose            string
	BusinessContent    string
	ContractPeriod     string
	InspectionDeadline string
	CommissionFee      string
	PaymentCondition   string
	BankName           string
	AccountNumber      string
	AccountHolder      string
	PaymentMethod      string
	SpecialTerms       string

	Issuer  Issuer
	Clauses []Clause
}

// FormFieldView is one input of the contract form
type FormFieldView struct {
	Key         string
	Label       string
	Kind        string
	Placeholder string
	Rows        int
	Value       string
}

// FormSectionView is one card of the contract form
type FormSectionView struct {
	Title  string
	Fields []FormFieldView
}

// PageView is the data for the main page
type PageView struct {
	Title    string
	Sections []FormSectionView
	Preview  PreviewView
}

// PreviewView is the thumbnail preview shown next to the form
type PreviewView struct {
	Document ContractView
	Scale    float64
}

// ExpandedPreviewView is the enlarged preview modal
type ExpandedPreviewView struct {
	Document ContractView
	Scale    float64
	Width    float64 // scaled size in CSS px
	Height   float64
}

// ExportStatusView reports the outcome of an export to the page
type ExportStatusView struct {
	FileName    string
	FileSize    int64
	Pages       int
	DownloadURL string
	Error       string

	// AutoDownload starts the download as soon as the fragment is swapped in
	AutoDownload bool
}
