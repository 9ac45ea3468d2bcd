package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// principalID reads the authenticated host id placed in Locals by the auth
// middleware.
func principalID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("hostId").(string)
	return primitive.ObjectIDFromHex(raw)
}

// principalEmail reads the authenticated email, empty when absent.
func principalEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
