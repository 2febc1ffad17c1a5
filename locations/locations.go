// Package locations carries the static country and province reference lists
// used to populate select inputs. Philippines gets a full province list; every
// other country falls back to free-text entry.
package locations

import "strings"

var Countries = []string{
	"Philippines",
	"United States",
	"Canada",
	"Australia",
	"United Kingdom",
	"Singapore",
	"Malaysia",
	"Indonesia",
	"India",
	"Other",
}

var PHProvinces = []string{
	"Abra", "Agusan del Norte", "Agusan del Sur", "Aklan", "Albay", "Antique",
	"Apayao", "Aurora", "Basilan", "Bataan", "Batanes", "Batangas", "Benguet",
	"Biliran", "Bohol", "Bukidnon", "Bulacan", "Cagayan", "Camarines Norte",
	"Camarines Sur", "Camiguin", "Capiz", "Catanduanes", "Cavite", "Cebu",
	"Cotabato (North Cotabato)", "Davao de Oro (Compostela Valley)",
	"Davao del Norte", "Davao del Sur", "Davao Occidental", "Davao Oriental",
	"Dinagat Islands", "Eastern Samar", "Guimaras", "Ifugao", "Ilocos Norte",
	"Ilocos Sur", "Iloilo", "Isabela", "Kalinga", "La Union", "Laguna",
	"Lanao del Norte", "Lanao del Sur", "Leyte", "Maguindanao del Norte",
	"Maguindanao del Sur", "Marinduque", "Masbate", "Metro Manila (NCR)",
	"Misamis Occidental", "Misamis Oriental", "Mountain Province",
	"Negros Occidental", "Negros Oriental", "Northern Samar", "Nueva Ecija",
	"Nueva Vizcaya", "Occidental Mindoro", "Oriental Mindoro", "Palawan",
	"Pampanga", "Pangasinan", "Quezon", "Quirino", "Rizal", "Romblon",
	"Samar (Western Samar)", "Sarangani", "Siquijor", "Sorsogon",
	"South Cotabato", "Southern Leyte", "Sultan Kudarat", "Sulu",
	"Surigao del Norte", "Surigao del Sur", "Tarlac", "Tawi-Tawi", "Zambales",
	"Zamboanga del Norte", "Zamboanga del Sur", "Zamboanga Sibugay",
}

// ProvincesFor returns the province list for a country, or nil when the form
// should fall back to free-text entry.
func ProvincesFor(country string) []string {
	if strings.EqualFold(strings.TrimSpace(country), "Philippines") {
		return PHProvinces
	}
	return nil
}
