package models

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BirthdayConfig is the page configuration consumed by the frontend.
type BirthdayConfig struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	AudioSrc string `json:"audioSrc"`
	Theme    string `json:"theme"`
}

const (
	StatusHealthy = "healthy"
	ThemeHacker   = "hacker"

	birthdayName     = "Chirag"
	birthdayLevel    = 16
	birthdayAudioSrc = "https://customer-assets.emergentagent.com/job_birthday-surprise-205/artifacts/jg47gc1p_happy-birthday-song.mp3"
)

func DefaultHealthStatus() HealthStatus {
	return HealthStatus{
		Status:  StatusHealthy,
		Message: "Happy Birthday " + birthdayName + "! 🎂",
	}
}

func DefaultBirthdayConfig() BirthdayConfig {
	return BirthdayConfig{
		Name:     birthdayName,
		Level:    birthdayLevel,
		AudioSrc: birthdayAudioSrc,
		Theme:    ThemeHacker,
	}
}
