package domain

import "errors"

var (
	MessageSuccessProcessReceipt = "receipt processed successfully"
	MessageFailedProcessReceipt  = "failed to process receipt"

	ErrNoItemsInReceipt        = errors.New("no food items found in receipt")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
)

type (
	ProcessReceiptRequest struct {
		RawText string `json:"raw_text" validate:"required"`
	}

	// ScannedItem is the shape the language model is asked to return for
	// every product found in the OCR text.
	ScannedItem struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		DaysLeft int    `json:"days_left"`
		Category string `json:"category"`
	}

	ProcessReceiptResponse struct {
		Items []ArticleResponse `json:"items"`
		Count int               `json:"count"`
	}
)
