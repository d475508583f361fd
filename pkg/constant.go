package pkg

const (
	// congestion band thresholds (vehicle counts)
	MODERATE_CONGESTION_MIN = 2
	HEAVY_CONGESTION_MIN    = 5

	CLOCK_LAYOUT = "15:04"
)

// ledger column names
const (
	COLUMN_LOCATION         = "Location"
	COLUMN_CONGESTION_LEVEL = "Congestion_Level"
	COLUMN_TIME             = "Time"
)

const (
	DEFAULT_LEDGER_PATH    = "./data/updated_traffic_data.csv"
	DEFAULT_POSTGRES_TABLE = "traffic_observations"
	MAX_BATCH_QUERIES      = 100
)
