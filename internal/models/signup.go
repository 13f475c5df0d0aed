package models

// Eligibility is the signup gate's verdict for a device and network.
type Eligibility struct {
	Reason  string
	Allowed bool
}

// Reasons reported by the signup gate.
const (
	ReasonDeviceUsed  = "device already used"
	ReasonNetworkUsed = "network already used"
)

// SignupRequest carries everything needed to open an account.
type SignupRequest struct {
	Email             string
	DisplayName       string
	DeviceFingerprint string
	IPAddress         string
	ReferralCode      string
	Provider          string
	IDToken           string
}
