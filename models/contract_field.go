package models

// Input kinds rendered by the contract form
const (
	InputText     = "text"
	InputDate     = "date"
	InputTextarea = "textarea"
)

// FieldDefinition describes how a contract field is presented in the form
type FieldDefinition struct {
	Key         FieldKey
	Label       string
	Kind        string
	Placeholder string
	Rows        int // textarea only
}

// FieldSection groups field definitions under a form card heading
type FieldSection struct {
	Title  string
	Fields []FieldDefinition
}

// FormSections is the layout of the contract form, in display order
var FormSections = []FieldSection{
	{
		Title: "基本情報",
		Fields: []FieldDefinition{
			{Key: FieldCreatedDate, Label: "作成日", Kind: InputDate},
			{Key: FieldRecipientName, Label: "氏名（受託者名）", Kind: InputText, Placeholder: "山田 太郎"},
		},
	},
	{
		Title: "契約内容",
		Fields: []FieldDefinition{
			{Key: FieldPurpose, Label: "目的", Kind: InputTextarea, Placeholder: "業務委託の目的を入力してください", Rows: 2},
			{Key: FieldBusinessContent, Label: "業務の内容", Kind: InputTextarea, Placeholder: "業務の具体的な内容を入力してください", Rows: 3},
			{Key: FieldContractPeriod, Label: "契約期間", Kind: InputText, Placeholder: "2024年1月1日〜2024年12月31日"},
			{Key: FieldCommissionFee, Label: "委託料", Kind: InputText, Placeholder: "100,000円（税込）"},
			{Key: FieldInspectionDeadline, Label: "検査完了期日", Kind: InputText, Placeholder: "検査完了期日を入力してください"},
		},
	},
	{
		Title: "支払い先情報",
		Fields: []FieldDefinition{
			{Key: FieldBankName, Label: "金融機関名", Kind: InputText, Placeholder: "○○銀行 ○○支店"},
			{Key: FieldAccountNumber, Label: "口座番号", Kind: InputText, Placeholder: "普通 1234567"},
			{Key: FieldAccountHolder, Label: "口座名義", Kind: InputText, Placeholder: "ヤマダ タロウ"},
			{Key: FieldPaymentMethod, Label: "支払方法", Kind: InputTextarea, Placeholder: "支払方法を入力してください", Rows: 3},
			{Key: FieldPaymentCondition, Label: "支払条件", Kind: InputTextarea, Placeholder: "支払条件を入力してください", Rows: 3},
		},
	},
	{
		Title: "特約事項",
		Fields: []FieldDefinition{
			{Key: FieldSpecialTerms, Label: "特約事項（任意）", Kind: InputTextarea, Placeholder: "特約事項がある場合は入力してください", Rows: 3},
		},
	},
}
