package domain

// TemplateID identifies a posting template for a business event kind.
type TemplateID string

const (
	TemplateCapitalContribution TemplateID = "CAPITAL_CONTRIBUTION"
	TemplateOwnerDrawing        TemplateID = "OWNER_DRAWING"
	TemplateCashSale            TemplateID = "CASH_SALE"
	TemplateCreditSale          TemplateID = "CREDIT_SALE"
	TemplateARCollection        TemplateID = "AR_COLLECTION"
	TemplateCashExpense         TemplateID = "CASH_EXPENSE"
	TemplateCreditExpense       TemplateID = "CREDIT_EXPENSE"
	TemplateInventoryPurchase   TemplateID = "INVENTORY_PURCHASE"
	TemplateAPPayment           TemplateID = "AP_PAYMENT"
	TemplateLoanReceived        TemplateID = "LOAN_RECEIVED"
	TemplateLoanPayment         TemplateID = "LOAN_PAYMENT"
	TemplateAssetPurchase       TemplateID = "ASSET_PURCHASE"
	TemplateDepreciation        TemplateID = "DEPRECIATION"
	TemplateChequeInCashed      TemplateID = "CHEQUE_IN_CASHED"
	TemplateChequeInBounced     TemplateID = "CHEQUE_IN_BOUNCED"
	TemplateChequeOutCashed     TemplateID = "CHEQUE_OUT_CASHED"
	TemplateChequeOutBounced    TemplateID = "CHEQUE_OUT_BOUNCED"
)

// PostingTemplate maps a business event kind to exactly one debit account
// and one credit account.
type PostingTemplate struct {
	ID                TemplateID `json:"id"`
	Description       string     `json:"description"`
	DebitAccountCode  string     `json:"debitAccountCode"`
	CreditAccountCode string     `json:"creditAccountCode"`
}

// PostingTemplates is the fixed lookup table used by the posting engine.
var PostingTemplates = map[TemplateID]PostingTemplate{
	TemplateCapitalContribution: {TemplateCapitalContribution, "Owner capital contribution", AccountCash, AccountOwnerCapital},
	TemplateOwnerDrawing:        {TemplateOwnerDrawing, "Owner drawing", AccountOwnerDrawings, AccountCash},
	TemplateCashSale:            {TemplateCashSale, "Cash sale", AccountCash, AccountSalesRevenue},
	TemplateCreditSale:          {TemplateCreditSale, "Sale on credit", AccountAR, AccountSalesRevenue},
	TemplateARCollection:        {TemplateARCollection, "Receivable collection", AccountCash, AccountAR},
	TemplateCashExpense:         {TemplateCashExpense, "Expense paid in cash", AccountOperatingExp, AccountCash},
	TemplateCreditExpense:       {TemplateCreditExpense, "Expense on credit", AccountOperatingExp, AccountAP},
	TemplateInventoryPurchase:   {TemplateInventoryPurchase, "Inventory purchase on credit", AccountInventory, AccountAP},
	TemplateAPPayment:           {TemplateAPPayment, "Payable settlement", AccountAP, AccountCash},
	TemplateLoanReceived:        {TemplateLoanReceived, "Loan received", AccountCash, AccountLoansPayable},
	TemplateLoanPayment:         {TemplateLoanPayment, "Loan principal payment", AccountLoansPayable, AccountCash},
	TemplateAssetPurchase:       {TemplateAssetPurchase, "Fixed asset purchase", AccountFixedAssets, AccountCash},
	TemplateDepreciation:        {TemplateDepreciation, "Monthly depreciation", AccountDepreciationExp, AccountAccumDeprec},
	TemplateChequeInCashed:      {TemplateChequeInCashed, "Incoming cheque cashed", AccountCash, AccountAR},
	TemplateChequeInBounced:     {TemplateChequeInBounced, "Incoming cheque bounced after cashing", AccountAR, AccountCash},
	TemplateChequeOutCashed:     {TemplateChequeOutCashed, "Outgoing cheque cashed", AccountAP, AccountCash},
	TemplateChequeOutBounced:    {TemplateChequeOutBounced, "Outgoing cheque bounced after cashing", AccountCash, AccountAP},
}
