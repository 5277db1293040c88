package controller

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type PagesController struct {
	SignInURL string
}

func NewPagesController(signInURL string) *PagesController {
	return &PagesController{SignInURL: signInURL}
}

// GET /
func (ctrl *PagesController) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":    "Home",
		"SignedIn": helperAuth.GetUserID(c) != "",
	}, "layouts/main")
}

// GET /sign-in
func (ctrl *PagesController) SignIn(c *fiber.Ctx) error {
	return c.Render("sign_in", fiber.Map{
		"Title":     "Sign in",
		"SignInURL": ctrl.SignInURL,
	}, "layouts/main")
}
