package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"snackstock-api/domain"
	"snackstock-api/entities"
	"snackstock-api/pkg/article"
	"snackstock-api/pkg/groq"
	"snackstock-api/pkg/user"

	"github.com/google/uuid"
)

const defaultShelfLifeDays = 7

// forbiddenWords are receipt artifacts the model sometimes mistakes for
// products; any extracted name containing one is dropped.
var forbiddenWords = []string{
	"BOLETA", "RUT", "TOTAL", "SUBTOTAL", "MESA", "CAJA", "LOCAL",
	"SANTIAGO", "VITACURA", "TICKET", "PROPINA", "FECHA", "HORA",
	"CLIENTE", "FISCAL", "COMENTARIO",
}

const receiptSystemPrompt = "You are an expert assistant for structuring purchase data. Your job is to extract food and drink items from noisy OCR text."

const receiptPromptTemplate = `Analyze this receipt text and extract ONLY the food/drink items.
Ignore: tips, totals, tax ids, addresses, table numbers, people counts.
Fix misspelled names (e.g. "L3che" -> "Leche").

IMPORTANT: For every product, estimate how many days it will keep based on its type:
- Dairy (milk, yogurt, fresh cheese): 5-7 days
- Fresh fruit/vegetables: 3-5 days
- Fresh meat: 2-3 days
- Packaged goods: 30+ days
- Frozen goods: 90+ days
- Dry goods (rice, pasta): 365+ days

OCR TEXT:
"%s"

RESPONSE FORMAT (valid JSON array only):
[
  {"name": "Product Name", "quantity": 1, "days_left": <estimated number>, "category": "Dairy"}
]

Valid categories are: Dairy, Fruit, Vegetables, Meat, Pantry, Frozen, Drinks`

type (
	ReceiptService interface {
		ProcessReceipt(ctx context.Context, req domain.ProcessReceiptRequest, userID string) (domain.ProcessReceiptResponse, error)
	}

	receiptService struct {
		groqService       groq.GroqService
		articleRepository article.ArticleRepository
		userRepository    user.UserRepository
	}
)

func NewReceiptService(groqService groq.GroqService, articleRepository article.ArticleRepository, userRepository user.UserRepository) ReceiptService {
	return &receiptService{
		groqService:       groqService,
		articleRepository: articleRepository,
		userRepository:    userRepository,
	}
}

func (s *receiptService) ProcessReceipt(ctx context.Context, req domain.ProcessReceiptRequest, userID string) (domain.ProcessReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProcessReceiptResponse{}, domain.ErrParseUUID
	}

	items, err := s.extractItems(ctx, req.RawText)
	if err != nil {
		return domain.ProcessReceiptResponse{}, err
	}

	if len(items) == 0 {
		return domain.ProcessReceiptResponse{}, domain.ErrNoItemsInReceipt
	}

	now := time.Now()
	articles := make([]*entities.Article, 0, len(items))
	for _, item := range items {
		daysLeft := item.DaysLeft
		if daysLeft <= 0 {
			daysLeft = defaultShelfLifeDays
		}
		expiryDate := now.AddDate(0, 0, daysLeft)

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		category := item.Category
		if category == "" {
			category = "General"
		}

		articles = append(articles, &entities.Article{
			ID:         uuid.New(),
			UserID:     userUUID,
			Name:       item.Name,
			Quantity:   quantity,
			Category:   category,
			ExpiryDate: &expiryDate,
		})
	}

	if err := s.articleRepository.AddArticles(ctx, articles); err != nil {
		return domain.ProcessReceiptResponse{}, err
	}

	// Scanned articles count toward the lifetime counter the same as
	// manually added ones.
	for range articles {
		if err := s.userRepository.IncrementCounter(ctx, userID, user.CounterProductsAdded); err != nil {
			return domain.ProcessReceiptResponse{}, err
		}
	}

	response := domain.ProcessReceiptResponse{Count: len(articles)}
	for _, a := range articles {
		daysLeft, status := article.ClassifyExpiry(a.ExpiryDate, now)
		response.Items = append(response.Items, domain.ArticleResponse{
			ID:         a.ID.String(),
			Name:       a.Name,
			Quantity:   a.Quantity,
			Category:   a.Category,
			ExpiryDate: a.ExpiryDate,
			DaysLeft:   daysLeft,
			Status:     status,
			CreatedAt:  a.CreatedAt,
		})
	}
	return response, nil
}

func (s *receiptService) extractItems(ctx context.Context, rawText string) ([]domain.ScannedItem, error) {
	prompt := fmt.Sprintf(receiptPromptTemplate, rawText)

	text, err := s.groqService.ChatJSON(ctx, receiptSystemPrompt, prompt, 0.1)
	if err != nil {
		return nil, err
	}

	var items []domain.ScannedItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, domain.ErrReceiptProcessingFailed
	}

	return FilterScannedItems(items), nil
}

// FilterScannedItems drops entries that are too short to be product names or
// that contain known receipt artifacts (totals, tax ids, table numbers).
func FilterScannedItems(items []domain.ScannedItem) []domain.ScannedItem {
	filtered := make([]domain.ScannedItem, 0, len(items))
	for _, item := range items {
		if len(item.Name) < 3 {
			continue
		}
		upperName := strings.ToUpper(item.Name)
		forbidden := false
		for _, word := range forbiddenWords {
			if strings.Contains(upperName, word) {
				forbidden = true
				break
			}
		}
		if !forbidden {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
