package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"shelterapi/internal/service"
)

// Services bundles the service layer for route registration.
type Services struct {
	Animals    service.AnimalService
	Breeds     service.BreedService
	Users      service.UserService
	Shelters   service.ShelterService
	Ownership  service.OwnershipService
	Activities service.ActivityService
	Fosterings service.FosteringService
	Favorites  service.FavoriteService
	Images     service.ImageService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health: checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Animals
	app.Post("/animals", CreateAnimal(svcs.Animals))
	app.Get("/animals", ListAnimals(svcs.Animals))
	app.Get("/animals/:id", GetAnimal(svcs.Animals))
	app.Put("/animals/:id", UpdateAnimal(svcs.Animals))
	app.Delete("/animals/:id", DeleteAnimal(svcs.Animals))

	// Breeds
	app.Post("/breeds", CreateBreed(svcs.Breeds))
	app.Get("/breeds", ListBreeds(svcs.Breeds))
	app.Get("/breeds/:id", GetBreed(svcs.Breeds))
	app.Put("/breeds/:id", UpdateBreed(svcs.Breeds))
	app.Delete("/breeds/:id", DeleteBreed(svcs.Breeds))

	// Users
	app.Post("/users", CreateUser(svcs.Users))
	app.Get("/users/:id", GetUser(svcs.Users))
	app.Get("/users/:id/favorites", ListFavorites(svcs.Favorites))

	// Shelters and their visit slots
	app.Post("/shelters", CreateShelter(svcs.Shelters))
	app.Get("/shelters", ListShelters(svcs.Shelters))
	app.Get("/shelters/:id", GetShelter(svcs.Shelters))
	app.Put("/shelters/:id", UpdateShelter(svcs.Shelters))
	app.Post("/shelters/:id/slots", CreateSlot(svcs.Shelters))
	app.Get("/shelters/:id/slots", ListSlots(svcs.Shelters))

	// Ownership requests
	app.Post("/ownership-requests", CreateOwnershipRequest(svcs.Ownership))
	app.Get("/ownership-requests", ListOwnershipRequests(svcs.Ownership))
	app.Get("/ownership-requests/:id", GetOwnershipRequest(svcs.Ownership))
	app.Put("/ownership-requests/:id/status", UpdateOwnershipRequestStatus(svcs.Ownership))
	app.Post("/ownership-requests/:id/approve", ApproveOwnershipRequest(svcs.Ownership))
	app.Post("/ownership-requests/:id/reject", RejectOwnershipRequest(svcs.Ownership))

	// Activities (visit scheduling)
	app.Post("/activities/ownership", CreateOwnershipActivity(svcs.Activities))
	app.Post("/activities/fostering", CreateFosteringActivity(svcs.Activities))
	app.Post("/activities/visit", CreateVisitActivity(svcs.Activities))
	app.Get("/activities", ListActivities(svcs.Activities))
	app.Post("/activities/:id/cancel", CancelActivity(svcs.Activities))
	app.Post("/activities/:id/complete", CompleteActivity(svcs.Activities))

	// Fosterings
	app.Post("/fosterings", CreateFostering(svcs.Fosterings))
	app.Get("/fosterings", ListFosterings(svcs.Fosterings))
	app.Post("/fosterings/:id/end", EndFostering(svcs.Fosterings))

	// Favorites
	app.Post("/animals/:id/favorite", AddFavorite(svcs.Favorites))
	app.Delete("/animals/:id/favorite", RemoveFavorite(svcs.Favorites))

	// Image attachments
	app.Post("/animals/:id/images", UploadImage(svcs.Images))
	app.Get("/animals/:id/images", ListAnimalImages(svcs.Images))
	app.Get("/images/:id", GetImage(svcs.Images))
	app.Delete("/images/:id", DeleteImage(svcs.Images))
}
