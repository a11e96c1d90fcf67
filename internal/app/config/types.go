package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
		Auth Auth
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	FHIR struct {
		BaseUrl                  string
		RequestTimeoutInSeconds  int
		MaxRequestsPerSecond     int
		MaxBurstRequests         int
	}

	Auth struct {
		BaseUrl      string
		RequiredRole string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
