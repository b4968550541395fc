package httpapi

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/city-weather/internal/session"
	"github.com/i474232898/city-weather/internal/store"
	"github.com/i474232898/city-weather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, history *store.HistoryStore) {
	app.Get("/", func(c *fiber.Ctx) error {
		var lastCity string
		if sid := c.Cookies(session.CookieName); sid != "" {
			city, err := history.LatestCity(sid)
			if err != nil {
				log.Printf("http: latest city lookup failed: %v", err)
			} else {
				lastCity = city
			}
		}
		return c.Render("index", fiber.Map{
			"LastCity": lastCity,
		})
	})

	app.Post("/weather", func(c *fiber.Ctx) error {
		return handleSearch(c, service, c.FormValue("city"))
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		return handleSearch(c, service, c.Query("city"))
	})

	app.Get("/history", func(c *fiber.Ctx) error {
		var counts []store.CityCount
		if sid := c.Cookies(session.CookieName); sid != "" {
			rows, err := history.CountsBySession(sid)
			if err != nil {
				// Read failures degrade to an empty history page.
				log.Printf("http: history query failed: %v", err)
			} else {
				counts = rows
			}
		}
		return c.Render("history", fiber.Map{
			"History": counts,
		})
	})

	app.Get("/api/stats", func(c *fiber.Ctx) error {
		counts, err := history.CountsGlobal()
		if err != nil {
			log.Printf("http: stats query failed: %v", err)
			counts = nil
		}
		if counts == nil {
			counts = []store.CityCount{}
		}
		return c.JSON(counts)
	})
}

// searchRequest holds the single user-supplied search field.
type searchRequest struct {
	City string `validate:"required"`
}

// handleSearch runs the flow shared by the form and query-parameter paths.
// The session cookie is set on every path past a successful resolution and
// never when resolution fails.
func handleSearch(c *fiber.Ctx, service *weather.Service, rawCity string) error {
	req := searchRequest{City: rawCity}
	if err := validate.Struct(req); err != nil {
		return c.Render("index", fiber.Map{
			"Error": "City is required",
		})
	}

	sid := c.Cookies(session.CookieName)
	if sid == "" {
		sid = session.NewToken()
		log.Printf("http: generated new session %s", sid)
	}

	result, err := service.Search(c.UserContext(), sid, req.City)
	switch {
	case errors.Is(err, weather.ErrForecastUnavailable):
		setSessionCookie(c, sid)
		return c.Render("index", fiber.Map{
			"Error":    "Failed to fetch weather",
			"City":     result.City,
			"LastCity": result.City,
		})
	case err != nil:
		// Resolution failed: echo the raw input, leave the cookie unset.
		return c.Render("index", fiber.Map{
			"Error": "City not found",
			"City":  req.City,
		})
	}

	setSessionCookie(c, sid)
	return c.Render("index", fiber.Map{
		"Weather":  result.Forecast,
		"City":     result.City,
		"LastCity": result.City,
	})
}

func setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:   session.CookieName,
		Value:  sid,
		MaxAge: int(session.TTL.Seconds()),
	})
}
