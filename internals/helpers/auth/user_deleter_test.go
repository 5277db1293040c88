package helper

import (
	"context"
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startProvider(t *testing.T) (string, chan string) {
	t.Helper()
	seen := make(chan string, 8)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Delete("/users/:id", func(c *fiber.Ctx) error {
		seen <- c.Params("id") + " " + c.Get(fiber.HeaderAuthorization)
		switch c.Params("id") {
		case "gone":
			return c.SendStatus(fiber.StatusNotFound)
		case "boom":
			return c.Status(fiber.StatusInternalServerError).SendString("provider exploded")
		}
		return c.JSON(fiber.Map{"deleted": true})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), seen
}

func TestProviderUserDeleter(t *testing.T) {
	baseURL, seen := startProvider(t)
	d := &ProviderUserDeleter{BaseURL: baseURL, Secret: "sk_test"}
	ctx := context.Background()

	require.NoError(t, d.DeleteUser(ctx, "user_1"))
	assert.Equal(t, "user_1 Bearer sk_test", <-seen)

	// 404 means the provider no longer knows the user
	require.NoError(t, d.DeleteUser(ctx, "gone"))
	<-seen

	err := d.DeleteUser(ctx, "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	<-seen
}

func TestNoopUserDeleter(t *testing.T) {
	assert.NoError(t, NoopUserDeleter{}.DeleteUser(context.Background(), "user_1"))
}
