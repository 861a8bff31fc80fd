package domain

var (
	MessageSuccessRunAnalysis   = "analysis completed successfully"
	MessageSuccessListAnalyses  = "analyses retrieved successfully"
	MessageSuccessRunPlayground = "query executed successfully"
	MessageNoDataAnalysis       = "no data found for the selected query"
	MessageNoDataPlayground     = "query executed but returned no data"

	MessageFailedRunAnalysis   = "failed to run analysis"
	MessageFailedRunPlayground = "failed to execute query"
)

type AnalysisName string

const (
	AnalysisProvidersReceiversByCity AnalysisName = "Providers & Receivers by City"
	AnalysisTopProviderTypeQuantity  AnalysisName = "Top Food Provider Type by Quantity"
	AnalysisProviderContactByCity    AnalysisName = "Provider Contact Info by City"
	AnalysisTopReceiversClaimed      AnalysisName = "Top Receivers by Claimed Food"
	AnalysisTotalFoodQuantity        AnalysisName = "Total Food Quantity Available"
	AnalysisCityMostListings         AnalysisName = "City with Most Food Listings"
	AnalysisTopFoodTypes             AnalysisName = "Top Food Types Available"
	AnalysisClaimsPerFoodItem        AnalysisName = "Claims Count per Food Item"
	AnalysisTopProviderSuccessful    AnalysisName = "Top Provider by Successful Claims"
	AnalysisClaimsStatusPercentage   AnalysisName = "Claims Status Percentage"
	AnalysisAvgQuantityPerReceiver   AnalysisName = "Avg Quantity Claimed per Receiver"
	AnalysisMostClaimedMealType      AnalysisName = "Most Claimed Meal Type"
	AnalysisTotalDonatedByProvider   AnalysisName = "Total Food Donated by Provider"
	AnalysisTopCitiesClaimedQuantity AnalysisName = "Top Cities by Claimed Food Quantity"
	AnalysisProvidersMostListings    AnalysisName = "Providers with Most Food Listings"
	AnalysisExpiringFood             AnalysisName = "Expired or Soon-to-Expire Food Items"
)

// AllAnalyses is the catalog order shown to users.
var AllAnalyses = []AnalysisName{
	AnalysisProvidersReceiversByCity,
	AnalysisTopProviderTypeQuantity,
	AnalysisProviderContactByCity,
	AnalysisTopReceiversClaimed,
	AnalysisTotalFoodQuantity,
	AnalysisCityMostListings,
	AnalysisTopFoodTypes,
	AnalysisClaimsPerFoodItem,
	AnalysisTopProviderSuccessful,
	AnalysisClaimsStatusPercentage,
	AnalysisAvgQuantityPerReceiver,
	AnalysisMostClaimedMealType,
	AnalysisTotalDonatedByProvider,
	AnalysisTopCitiesClaimedQuantity,
	AnalysisProvidersMostListings,
	AnalysisExpiringFood,
}

// ParamKind describes the single optional parameter slot of an analysis.
type ParamKind string

const (
	ParamNone ParamKind = ""
	ParamCity ParamKind = "city"
	ParamDays ParamKind = "days"
)

type ChartType string

const (
	ChartNone ChartType = "none"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
	ChartLine ChartType = "line"
)

// ChartSpec is a declarative chart description. Column fields name columns of
// the accompanying result table; rendering is left to the client.
type ChartSpec struct {
	Type    ChartType `json:"type"`
	Title   string    `json:"title"`
	X       string    `json:"x,omitempty"`
	Y       []string  `json:"y,omitempty"`
	Names   string    `json:"names,omitempty"`
	Values  string    `json:"values,omitempty"`
	Color   string    `json:"color,omitempty"`
	BarMode string    `json:"bar_mode,omitempty"`
	Palette string    `json:"palette,omitempty"`
}

type (
	RunAnalysisRequest struct {
		Name  string `json:"name" validate:"required"`
		Param string `json:"param"`
	}

	AnalysisInfo struct {
		Name     AnalysisName `json:"name"`
		Param    ParamKind    `json:"param,omitempty"`
		HasChart bool         `json:"has_chart"`
	}

	AnalysisResult struct {
		Name       AnalysisName `json:"name"`
		Data       *Table       `json:"data"`
		Chart      *ChartSpec   `json:"chart,omitempty"`
		ChartError string       `json:"chart_error,omitempty"`
	}

	PlaygroundRequest struct {
		SQL   string `json:"sql"`
		Chart string `json:"chart" validate:"omitempty,oneof=none bar pie line None Bar Pie Line"`
	}

	PlaygroundResult struct {
		RunID string     `json:"run_id"`
		Data  *Table     `json:"data"`
		Chart *ChartSpec `json:"chart,omitempty"`
	}
)
