package weather

// Location is a geocoded place: the canonical name pair plus coordinates.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Label returns the canonical "Name, Country" form used for history rows
// and display.
func (l Location) Label() string {
	return l.Name + ", " + l.Country
}

// ForecastData is the raw hourly forecast payload, passed through to the
// view without transformation.
type ForecastData struct {
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	HourlyUnits HourlyUnits `json:"hourly_units"`
	Hourly      Hourly      `json:"hourly"`
}

// HourlyUnits holds the display units matching the Hourly arrays.
type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2M string `json:"temperature_2m"`
	WeatherCode   string `json:"weathercode"`
	Precipitation string `json:"precipitation"`
	WindSpeed10M  string `json:"windspeed_10m"`
}

// Hourly holds the parallel per-hour arrays as returned upstream.
type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	WeatherCode   []int     `json:"weathercode"`
	Precipitation []float64 `json:"precipitation"`
	WindSpeed10M  []float64 `json:"windspeed_10m"`
}

// HourlyRow is one zipped row of the parallel hourly arrays, used by the
// index template.
type HourlyRow struct {
	Time          string
	Temperature   float64
	WeatherCode   int
	Precipitation float64
	WindSpeed     float64
}

// Rows zips the hourly arrays into row form. Arrays shorter than Time are
// padded with zero values so a ragged payload cannot panic the template.
func (f *ForecastData) Rows() []HourlyRow {
	rows := make([]HourlyRow, 0, len(f.Hourly.Time))
	for i, ts := range f.Hourly.Time {
		row := HourlyRow{Time: ts}
		if i < len(f.Hourly.Temperature2M) {
			row.Temperature = f.Hourly.Temperature2M[i]
		}
		if i < len(f.Hourly.WeatherCode) {
			row.WeatherCode = f.Hourly.WeatherCode[i]
		}
		if i < len(f.Hourly.Precipitation) {
			row.Precipitation = f.Hourly.Precipitation[i]
		}
		if i < len(f.Hourly.WindSpeed10M) {
			row.WindSpeed = f.Hourly.WindSpeed10M[i]
		}
		rows = append(rows, row)
	}
	return rows
}
