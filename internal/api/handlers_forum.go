package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/models"
)

func (handler *Handler) ForumCategories(c *fiber.Ctx) error {
	categories := models.DefaultForumCategories()
	views := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		views = append(views, fiber.Map{
			"id":   category.ID,
			"name": category.Name,
			"icon": category.Icon,
		})
	}
	return c.JSON(fiber.Map{"categories": views})
}

func (handler *Handler) ListForumPosts(c *fiber.Ctx) error {
	posts, err := handler.forum.ListPosts(c.Query("category"))
	if err != nil {
		return serviceError(c, err, "failed to load posts")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (handler *Handler) GetForumPost(c *fiber.Ctx) error {
	post, err := handler.forum.GetPost(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "failed to load post")
	}
	return c.JSON(post)
}

type forumPostInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

func (handler *Handler) CreateForumPost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := forumPostInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	post, err := handler.forum.CreatePost(user.ID, input.Category, input.Title, input.Content)
	if err != nil {
		return serviceError(c, err, "failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

type forumReplyInput struct {
	Content string `json:"content"`
}

func (handler *Handler) AddForumReply(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := forumReplyInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reply, err := handler.forum.AddReply(user.ID, c.Params("id"), input.Content)
	if err != nil {
		return serviceError(c, err, "failed to add reply")
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

func (handler *Handler) ToggleForumLike(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	likes, err := handler.forum.ToggleLike(user.ID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "failed to toggle like")
	}
	return c.JSON(fiber.Map{"likes": likes})
}
