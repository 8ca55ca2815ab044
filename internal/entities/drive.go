package entities

import "strings"

// Drive is why a hunter hunts. Each drive has a redemption that restores it
// after despair.
type Drive string

const (
	DriveCuriosity Drive = "Curiosity"
	DriveVengeance Drive = "Vengeance"
	DriveOath      Drive = "Oath"
	DriveGreed     Drive = "Greed"
	DrivePride     Drive = "Pride"
	DriveEnvy      Drive = "Envy"
	DriveAtonement Drive = "Atonement"
)

// Drives lists the drives in the order the core book presents them
var Drives = []Drive{DriveCuriosity, DriveVengeance, DriveOath, DriveGreed, DrivePride, DriveEnvy, DriveAtonement}

var redemptions = map[Drive]string{
	DriveCuriosity: "Uncover new information about your quarry",
	DriveVengeance: "Hurt your quarry",
	DriveOath:      "Actively uphold or fulfill your oath",
	DriveGreed:     "Acquire resources from enemies",
	DrivePride:     "Best your quarry in some contest",
	DriveEnvy:      "Ally with your quarry",
	DriveAtonement: "Protect someone from your quarry",
}

// Redemption is the default redemption for the drive, empty for custom drives
func (d Drive) Redemption() string {
	return redemptions[d]
}

// ParseDrive matches a standard drive case-insensitively
func ParseDrive(raw string) (Drive, bool) {
	for _, d := range Drives {
		if strings.EqualFold(string(d), strings.TrimSpace(raw)) {
			return d, true
		}
	}
	return "", false
}
