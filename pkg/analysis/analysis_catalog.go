package analysis

import (
	"Food-Wastage-Management/domain"
	"fmt"
)

// Template is one fixed, read-only analysis query.
type Template struct {
	Name  domain.AnalysisName
	SQL   string
	Param domain.ParamKind
	// Chart names the result columns it plots; nil means table only.
	Chart *domain.ChartSpec
}

// Top-N queries sort on their metric only; ties come back in whatever order
// the store produces.
var catalog = map[domain.AnalysisName]Template{
	domain.AnalysisProvidersReceiversByCity: {
		SQL: `SELECT City,
       (SELECT COUNT(*) FROM Providers p2 WHERE p2.City = p.City) AS Providers_Count,
       (SELECT COUNT(*) FROM Receivers r WHERE r.City = p.City) AS Receivers_Count
FROM Providers p
GROUP BY City`,
		Chart: &domain.ChartSpec{
			Type:    domain.ChartBar,
			Title:   "Number of Providers and Receivers by City",
			X:       "City",
			Y:       []string{"Providers_Count", "Receivers_Count"},
			BarMode: "group",
			Palette: "Pastel",
		},
	},
	domain.AnalysisTopProviderTypeQuantity: {
		SQL: `SELECT Type, SUM(f.Quantity) AS Total_Quantity
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
GROUP BY Type
ORDER BY Total_Quantity DESC
LIMIT 5`,
		Chart: bar("Top Food Provider Types by Quantity", "Type", "Total_Quantity", "Set2"),
	},
	domain.AnalysisProviderContactByCity: {
		SQL: `SELECT Name, Contact, Address
FROM Providers
WHERE City = ?`,
		Param: domain.ParamCity,
	},
	domain.AnalysisTopReceiversClaimed: {
		SQL: `SELECT r.Name, r.Contact, SUM(f.Quantity) AS Total_Claimed
FROM Receivers r
JOIN Claims c ON r.Receiver_ID = c.Receiver_ID
JOIN Food_Listings f ON c.Food_ID = f.Food_ID
GROUP BY r.Receiver_ID, r.Name, r.Contact
ORDER BY Total_Claimed DESC
LIMIT 10`,
		Chart: bar("Top Receivers by Claimed Food", "Name", "Total_Claimed", "Vivid"),
	},
	domain.AnalysisTotalFoodQuantity: {
		SQL: `SELECT SUM(Quantity) AS Total_Food_Quantity FROM Food_Listings`,
	},
	domain.AnalysisCityMostListings: {
		SQL: `SELECT p.City, COUNT(*) AS Listings_Count
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
GROUP BY p.City
ORDER BY Listings_Count DESC
LIMIT 1`,
	},
	domain.AnalysisTopFoodTypes: {
		SQL: `SELECT Food_Type, COUNT(*) AS Count
FROM Food_Listings
GROUP BY Food_Type
ORDER BY Count DESC
LIMIT 5`,
		Chart: bar("Top Food Types Available", "Food_Type", "Count", "Pastel1"),
	},
	domain.AnalysisClaimsPerFoodItem: {
		SQL: `SELECT f.Food_Name, COUNT(*) AS Claims_Count
FROM Food_Listings f
JOIN Claims c ON f.Food_ID = c.Food_ID
GROUP BY f.Food_ID, f.Food_Name`,
		Chart: bar("Claims Count per Food Item", "Food_Name", "Claims_Count", "Set3"),
	},
	domain.AnalysisTopProviderSuccessful: {
		SQL: `SELECT p.Name, COUNT(*) AS Successful_Claims
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
JOIN Claims c ON f.Food_ID = c.Food_ID
WHERE c.Status = 'Completed'
GROUP BY p.Provider_ID, p.Name
ORDER BY Successful_Claims DESC
LIMIT 1`,
	},
	domain.AnalysisClaimsStatusPercentage: {
		SQL: `SELECT Status,
       COUNT(*) AS Count,
       ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM Claims), 2) AS Percentage
FROM Claims
GROUP BY Status`,
		Chart: &domain.ChartSpec{
			Type:    domain.ChartPie,
			Title:   "Claims Status Percentage",
			Names:   "Status",
			Values:  "Percentage",
			Color:   "Status",
			Palette: "RdBu",
		},
	},
	domain.AnalysisAvgQuantityPerReceiver: {
		SQL: `SELECT r.Name, AVG(f.Quantity) AS Avg_Quantity_Claimed
FROM Receivers r
JOIN Claims c ON r.Receiver_ID = c.Receiver_ID
JOIN Food_Listings f ON c.Food_ID = f.Food_ID
GROUP BY r.Receiver_ID, r.Name`,
		Chart: bar("Average Quantity Claimed per Receiver", "Name", "Avg_Quantity_Claimed", "Pastel"),
	},
	domain.AnalysisMostClaimedMealType: {
		SQL: `SELECT f.Meal_Type, COUNT(*) AS Claims_Count
FROM Food_Listings f
JOIN Claims c ON f.Food_ID = c.Food_ID
GROUP BY f.Meal_Type
ORDER BY Claims_Count DESC`,
		Chart: bar("Most Claimed Meal Type", "Meal_Type", "Claims_Count", "Dark24"),
	},
	domain.AnalysisTotalDonatedByProvider: {
		SQL: `SELECT p.Name, SUM(f.Quantity) AS Total_Quantity_Donated
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
GROUP BY p.Provider_ID, p.Name
ORDER BY Total_Quantity_Donated DESC`,
		Chart: bar("Total Food Donated by Provider", "Name", "Total_Quantity_Donated", "Bold"),
	},
	domain.AnalysisTopCitiesClaimedQuantity: {
		SQL: `SELECT p.City, SUM(f.Quantity) AS Total_Claimed
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
JOIN Claims c ON f.Food_ID = c.Food_ID
WHERE c.Status = 'Completed'
GROUP BY p.City
ORDER BY Total_Claimed DESC
LIMIT 5`,
		Chart: bar("Top Cities by Claimed Food Quantity", "City", "Total_Claimed", "Prism"),
	},
	domain.AnalysisProvidersMostListings: {
		SQL: `SELECT p.Name, COUNT(f.Food_ID) AS Listings_Count
FROM Providers p
JOIN Food_Listings f ON p.Provider_ID = f.Provider_ID
GROUP BY p.Provider_ID, p.Name
ORDER BY Listings_Count DESC
LIMIT 5`,
		Chart: bar("Providers with Most Food Listings", "Name", "Listings_Count", "Set3"),
	},
	// The cutoff date is bound as a parameter so the same text runs on every store.
	domain.AnalysisExpiringFood: {
		SQL: `SELECT Food_Name, Quantity, Expiry_Date, Location
FROM Food_Listings
WHERE Expiry_Date <= ?
ORDER BY Expiry_Date ASC`,
		Param: domain.ParamDays,
		Chart: bar("Expired or Soon-to-Expire Food Items", "Food_Name", "Quantity", "Agsunset"),
	},
}

func bar(title, x, y, palette string) *domain.ChartSpec {
	return &domain.ChartSpec{
		Type:    domain.ChartBar,
		Title:   title,
		X:       x,
		Y:       []string{y},
		Color:   x,
		Palette: palette,
	}
}

// Lookup finds a template by its exact, case-sensitive name.
func Lookup(name string) (Template, error) {
	t, ok := catalog[domain.AnalysisName(name)]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", domain.ErrUnknownAnalysis, name)
	}
	t.Name = domain.AnalysisName(name)
	return t, nil
}

// Catalog lists every analysis in display order.
func Catalog() []domain.AnalysisInfo {
	out := make([]domain.AnalysisInfo, 0, len(domain.AllAnalyses))
	for _, name := range domain.AllAnalyses {
		t := catalog[name]
		out = append(out, domain.AnalysisInfo{Name: name, Param: t.Param, HasChart: t.Chart != nil})
	}
	return out
}
