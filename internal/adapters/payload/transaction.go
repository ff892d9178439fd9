package payload

import (
	"strconv"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

const defaultTransactionType = "sale"

func Transaction(doc gjson.Result) domain.Transaction {
	transaction := domain.Transaction{
		ID:              domain.TransactionID(text(doc.Get("id"))),
		PropertyID:      domain.PropertyID(text(doc.Get("property_id"))),
		Status:          domain.TransactionStatus(firstNonEmpty(stringField(doc.Get("transaction_status")), string(domain.TransactionStatusPending))),
		TransactionType: firstNonEmpty(stringField(doc.Get("transaction_type")), defaultTransactionType),
		Milestones:      milestones(doc.Get("milestones")),
		Documents:       documents(doc.Get("documents")),
		CreatedAt:       timestamp(doc.Get("created_at")),
		UpdatedAt:       timestamp(doc.Get("updated_at")),
	}
	if buyer := doc.Get("buyer_id"); truthy(buyer) {
		transaction.BuyerID = domain.ClientID(text(buyer))
	}
	if seller := doc.Get("seller_id"); truthy(seller) {
		transaction.SellerID = domain.ClientID(text(seller))
	}
	if offer := doc.Get("offer_price"); truthy(offer) {
		transaction.OfferPrice = numberPtr(offer)
	}
	if final := doc.Get("final_price"); truthy(final) {
		transaction.FinalPrice = numberPtr(final)
	}
	return transaction
}

func milestones(value gjson.Result) []domain.Milestone {
	items := []domain.Milestone{}
	if !value.IsArray() {
		return items
	}
	for _, item := range value.Array() {
		status := domain.MilestoneStatus(firstNonEmpty(stringField(item.Get("status")), string(domain.MilestonePending)))
		items = append(items, domain.Milestone{
			ID:        text(item.Get("id")),
			Name:      text(first(item, "name", "title")),
			DueDate:   timestamp(first(item, "due_date", "dueDate")),
			Status:    status,
			Completed: status == domain.MilestoneCompleted || item.Get("completed").Bool(),
			Notes:     text(item.Get("notes")),
		})
	}
	domain.SortMilestones(items)
	return items
}

func documents(value gjson.Result) []domain.Document {
	docs := []domain.Document{}
	if !value.IsArray() {
		return docs
	}
	for _, item := range value.Array() {
		if item.Type == gjson.String {
			docs = append(docs, domain.Document{Name: item.Str})
			continue
		}
		docs = append(docs, domain.Document{
			Name: text(first(item, "name", "file_name", "title")),
			URL:  text(first(item, "url", "file_url")),
		})
	}
	return docs
}

func TransactionFromJSON(body []byte) domain.Transaction {
	return Transaction(document(body))
}

func Transactions(body []byte) []domain.Transaction {
	items := records(body)
	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, Transaction(item))
	}
	return transactions
}

// TransactionCreateBody sends property_id as a number when the id is numeric.
func TransactionCreateBody(draft domain.TransactionDraft) map[string]any {
	body := map[string]any{
		"property_id":      propertyIDValue(draft.PropertyID),
		"transaction_type": draft.TransactionType,
	}
	if draft.OfferPrice != nil {
		body["offer_price"] = *draft.OfferPrice
	}
	return body
}

func TransactionStatusBody(status domain.TransactionStatus) map[string]any {
	return map[string]any{"transaction_status": string(status)}
}

func propertyIDValue(id domain.PropertyID) any {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return n
	}
	return string(id)
}
