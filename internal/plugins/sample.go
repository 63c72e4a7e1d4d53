package plugins

import "github.com/gofiber/fiber/v2"

func init() {
	register(&samplePlugin{})
}

// samplePlugin plugin de demostración: expone GET /api/plugins/sample/hello.
type samplePlugin struct{}

func (p *samplePlugin) Metadata() Metadata {
	return Metadata{
		ID:          "sample-plugin",
		Name:        "Sample Plugin",
		Version:     "1.0.0",
		Description: "Plugin de ejemplo del sistema de plugins",
		Author:      "KellyOS Team",
	}
}

func (p *samplePlugin) Initialize(router fiber.Router) error {
	group := router.Group("/sample")
	group.Get("/hello", func(c *fiber.Ctx) error {
		meta := p.Metadata()
		return c.JSON(fiber.Map{
			"message": "Hello from Sample Plugin!",
			"plugin":  meta.Name,
			"version": meta.Version,
		})
	})
	return nil
}

func (p *samplePlugin) Destroy() error { return nil }
