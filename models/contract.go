package models

import (
	"fmt"
	"time"
)

// FieldKey names one of the fixed contract fields
type FieldKey string

const (
	FieldCreatedDate        FieldKey = "createdDate"
	FieldRecipientName      FieldKey = "recipientName"
	FieldPurpose            FieldKey = "purpose"
	FieldBusinessContent    FieldKey = "businessContent"
	FieldContractPeriod     FieldKey = "contractPeriod"
	FieldCommissionFee      FieldKey = "commissionFee"
	FieldBankName           FieldKey = "bankName"
	FieldAccountNumber      FieldKey = "accountNumber"
	FieldAccountHolder      FieldKey = "accountHolder"
	FieldPaymentMethod      FieldKey = "paymentMethod"
	FieldPaymentCondition   FieldKey = "paymentCondition"
	FieldInspectionDeadline FieldKey = "inspectionDeadline"
	FieldSpecialTerms       FieldKey = "specialTerms"
)

// DateLayout is the ISO calendar date format used by the createdDate field
const DateLayout = "2006-01-02"

// FieldKeys lists every contract field in form order
var FieldKeys = []FieldKey{
	FieldCreatedDate,
	FieldRecipientName,
	FieldPurpose,
	FieldBusinessContent,
	FieldContractPeriod,
	FieldCommissionFee,
	FieldInspectionDeadline,
	FieldBankName,
	FieldAccountNumber,
	FieldAccountHolder,
	FieldPaymentMethod,
	FieldPaymentCondition,
	FieldSpecialTerms,
}

// Boilerplate defaults for the payment and terms fields
const (
	DefaultPaymentMethod      = "全額現金払\n(口座振込による。支払期日が金融機関の休業日にあたる場合は、翌営業日に支払う。）"
	DefaultPaymentCondition   = "・法人もしくは個人事業主でない場合、委託料より源泉所得税を引いた金額を振込ませていただきます。\n・適格請求書発行事業者登録番号（登録番号）がない場合、お支払い金額より1.82%を減額して振込ませていただきます。"
	DefaultInspectionDeadline = "甲が行なう検収の合格を以って、業務の完了とする"
	DefaultSpecialTerms       = "・投稿案件のクライアントと直接のやりとりはしないこと。\n・投稿前に甲に投稿内容の確認を行わせること。\n・PR案件とわかるような投稿をすること。\n・投稿終了後にインサイトを提出すること。\n・クライアントの二次利用を許可すること。\n・甲からの連絡があり、返信が必要な場合は1日以内に返信すること。\n　※連絡がとれない場合は、報酬をお支払いできない場合があります。"
)

// ContractFields holds the variable content of a 業務委託書.
// It is a value type: edits go through With, which returns a new record.
type ContractFields struct {
	CreatedDate        string `json:"createdDate" form:"createdDate"`
	RecipientName      string `json:"recipientName" form:"recipientName"`
	Purpose            string `json:"purpose" form:"purpose"`
	BusinessContent    string `json:"businessContent" form:"businessContent"`
	ContractPeriod     string `json:"contractPeriod" form:"contractPeriod"`
	CommissionFee      string `json:"commissionFee" form:"commissionFee"`
	BankName           string `json:"bankName" form:"bankName"`
	AccountNumber      string `json:"accountNumber" form:"accountNumber"`
	AccountHolder      string `json:"accountHolder" form:"accountHolder"`
	PaymentMethod      string `json:"paymentMethod" form:"paymentMethod"`
	PaymentCondition   string `json:"paymentCondition" form:"paymentCondition"`
	InspectionDeadline string `json:"inspectionDeadline" form:"inspectionDeadline"`
	SpecialTerms       string `json:"specialTerms" form:"specialTerms"`
}

// DefaultContractFields returns the record a new session starts with
func DefaultContractFields(now time.Time) ContractFields {
	return ContractFields{
		CreatedDate:        now.Format(DateLayout),
		PaymentMethod:      DefaultPaymentMethod,
		PaymentCondition:   DefaultPaymentCondition,
		InspectionDeadline: DefaultInspectionDeadline,
		SpecialTerms:       DefaultSpecialTerms,
	}
}

// IsValidFieldKey reports whether key belongs to the closed field set
func IsValidFieldKey(key FieldKey) bool {
	for _, k := range FieldKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the value stored under key, or "" for an unknown key
func (f ContractFields) Get(key FieldKey) string {
	if p := f.pointer(key); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of the record with one field replaced
func (f ContractFields) With(key FieldKey, value string) (ContractFields, error) {
	p := f.pointer(key)
	if p == nil {
		return f, fmt.Errorf("unknown contract field: %q", key)
	}
	*p = value
	return f, nil
}

// Values returns the record as a key/value map in no particular order
func (f ContractFields) Values() map[FieldKey]string {
	values := make(map[FieldKey]string, len(FieldKeys))
	for _, key := range FieldKeys {
		values[key] = f.Get(key)
	}
	return values
}

// pointer resolves key to the backing field of this copy
func (f *ContractFields) pointer(key FieldKey) *string {
	switch key {
	case FieldCreatedDate:
		return &f.CreatedDate
	case FieldRecipientName:
		return &f.RecipientName
	case FieldPurpose:
		return &f.Purpose
	case FieldBusinessContent:
		return &f.BusinessContent
	case FieldContractPeriod:
		return &f.ContractPeriod
	case FieldCommissionFee:
		return &f.CommissionFee
	case FieldBankName:
		return &f.BankName
	case FieldAccountNumber:
		return &f.AccountNumber
	case FieldAccountHolder:
		return &f.AccountHolder
	case FieldPaymentMethod:
		return &f.PaymentMethod
	case FieldPaymentCondition:
		return &f.PaymentCondition
	case FieldInspectionDeadline:
		return &f.InspectionDeadline
	case FieldSpecialTerms:
		return &f.SpecialTerms
	default:
		return nil
	}
}
