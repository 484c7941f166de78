package common

const (
	RecommendationBuy  = "BUY"
	RecommendationSell = "SELL"

	AboveFiftyDayMA = "Above 50-Day MA"
	BelowFiftyDayMA = "Below 50-Day MA"

	DefaultModelLabel = "Logistic Regression (News-Augmented)"

	ProfileChart     = "chart"
	ProfileDashboard = "dashboard"

	HeaderSessionID = "X-Session-ID"
	HeaderRequestID = "X-Request-ID"

	CacheKeySession           = "prediction_session:%s"
	CacheKeyDashboardSnapshot = "dashboard_snapshot"

	PredictionFailedMessage = "Failed to generate prediction. Please try again."
)
