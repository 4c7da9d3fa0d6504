package handlers

import (
	"errors"
	"strconv"

	"snackstock-api/domain"
	"snackstock-api/internal/api/presenters"
	"snackstock-api/pkg/article"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ArticleHandler interface {
		AddArticle(c *fiber.Ctx) error
		UpdateArticle(c *fiber.Ctx) error
		DeleteArticle(c *fiber.Ctx) error
		GetArticles(c *fiber.Ctx) error
		GetArticleDetails(c *fiber.Ctx) error
		GetCriticalArticles(c *fiber.Ctx) error
	}

	articleHandler struct {
		articleService article.ArticleService
		validator      *validator.Validate
	}
)

func NewArticleHandler(articleService article.ArticleService, validator *validator.Validate) ArticleHandler {
	return &articleHandler{
		articleService: articleService,
		validator:      validator,
	}
}

func (h *articleHandler) AddArticle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddArticleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddArticle, err)
	}

	res, err := h.articleService.AddArticle(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddArticle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddArticle)
}

func (h *articleHandler) UpdateArticle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	articleID := c.Params("id")
	req := new(domain.UpdateArticleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateArticle, err)
	}

	res, err := h.articleService.UpdateArticle(c.Context(), articleID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateArticle, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateArticle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateArticle)
}

func (h *articleHandler) DeleteArticle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	articleID := c.Params("id")

	if err := h.articleService.DeleteArticle(c.Context(), articleID, userID); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteArticle, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteArticle, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteArticle)
}

func (h *articleHandler) GetArticles(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.articleService.GetArticles(c.Context(), userID, c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetArticles, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"count": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetArticles)
}

func (h *articleHandler) GetArticleDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	articleID := c.Params("id")

	item, err := h.articleService.GetArticleByID(c.Context(), articleID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetArticles, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetArticles, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetArticles)
}

func (h *articleHandler) GetCriticalArticles(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	daysThreshold, err := strconv.Atoi(c.Query("days", strconv.Itoa(article.DefaultCriticalDays)))
	if err != nil || daysThreshold < 0 {
		daysThreshold = article.DefaultCriticalDays
	}

	items, err := h.articleService.GetCriticalArticles(c.Context(), userID, daysThreshold)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCritical, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"count": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetCritical)
}
