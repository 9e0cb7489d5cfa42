package domain

// TransactionDetails is one funds-movement instruction. Field order here is
// the order fields are serialized in.
type TransactionDetails struct {
	Amount           string `json:"amount" validate:"required,numeric"` // decimal string
	PaymentDate      string `json:"paymentDate" validate:"required"`    // ISO date
	Reference        string `json:"reference" validate:"required"`
	Remarks          string `json:"remarks" validate:"required"`
	VendorCode       string `json:"vendorCode" validate:"required"`
	VendorName       string `json:"vendorName" validate:"required"`
	VendorAcctNumber string `json:"vendorAcctNumber" validate:"required,acctno"`
	VendorBankCode   string `json:"vendorBankCode" validate:"required"`
}

// Fields returns the instruction as ordered (element, value) pairs.
func (t TransactionDetails) Fields() []Field {
	return []Field{
		{Name: "amount", Value: t.Amount},
		{Name: "paymentdate", Value: t.PaymentDate},
		{Name: "reference", Value: t.Reference},
		{Name: "remarks", Value: t.Remarks},
		{Name: "vendorcode", Value: t.VendorCode},
		{Name: "vendorname", Value: t.VendorName},
		{Name: "vendoracctnumber", Value: t.VendorAcctNumber},
		{Name: "vendorbankcode", Value: t.VendorBankCode},
	}
}

// IsAccountNumber reports whether s is exactly 10 ASCII digits.
func IsAccountNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
