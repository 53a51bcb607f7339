package routeros

var (
	BuildLogBody     = buildLogBody
	HealthStatus     = healthStatus
	NormalizeRecords = normalizeRecords
)
