package models

// Device type codes as claimed by clients during login. These mirror
// the values clients send in their device metadata and are treated as
// display hints only.
const (
	DeviceTypeAndroid          = 0
	DeviceTypeIos              = 1
	DeviceTypeChromeExtension  = 2
	DeviceTypeFirefoxExtension = 3
	DeviceTypeOperaExtension   = 4
	DeviceTypeEdgeExtension    = 5
	DeviceTypeWindowsDesktop   = 6
	DeviceTypeMacosDesktop     = 7
	DeviceTypeLinuxDesktop     = 8
	DeviceTypeChromeBrowser    = 9
	DeviceTypeFirefoxBrowser   = 10
	DeviceTypeOperaBrowser     = 11
	DeviceTypeEdgeBrowser      = 12
	DeviceTypeIeBrowser        = 13
	DeviceTypeUnknownBrowser   = 14
	DeviceTypeAndroidAmazon    = 15
	DeviceTypeUwp              = 16
	DeviceTypeSafariBrowser    = 17
	DeviceTypeVivaldiBrowser   = 18
	DeviceTypeVivaldiExtension = 19
	DeviceTypeSafariExtension  = 20
	DeviceTypeSdk              = 21
	DeviceTypeServer           = 22
	DeviceTypeWindowsCli       = 23
	DeviceTypeMacosCli         = 24
	DeviceTypeLinuxCli         = 25
)

var deviceTypeNames = map[int]string{
	DeviceTypeAndroid:          "Android",
	DeviceTypeIos:              "iOS",
	DeviceTypeChromeExtension:  "Chrome Extension",
	DeviceTypeFirefoxExtension: "Firefox Extension",
	DeviceTypeOperaExtension:   "Opera Extension",
	DeviceTypeEdgeExtension:    "Edge Extension",
	DeviceTypeWindowsDesktop:   "Windows",
	DeviceTypeMacosDesktop:     "macOS",
	DeviceTypeLinuxDesktop:     "Linux",
	DeviceTypeChromeBrowser:    "Chrome",
	DeviceTypeFirefoxBrowser:   "Firefox",
	DeviceTypeOperaBrowser:     "Opera",
	DeviceTypeEdgeBrowser:      "Edge",
	DeviceTypeIeBrowser:        "Internet Explorer",
	DeviceTypeUnknownBrowser:   "Unknown Browser",
	DeviceTypeAndroidAmazon:    "Android (Amazon)",
	DeviceTypeUwp:              "UWP",
	DeviceTypeSafariBrowser:    "Safari",
	DeviceTypeVivaldiBrowser:   "Vivaldi",
	DeviceTypeVivaldiExtension: "Vivaldi Extension",
	DeviceTypeSafariExtension:  "Safari Extension",
	DeviceTypeSdk:              "SDK",
	DeviceTypeServer:           "Server",
	DeviceTypeWindowsCli:       "Windows CLI",
	DeviceTypeMacosCli:         "macOS CLI",
	DeviceTypeLinuxCli:         "Linux CLI",
}

// DeviceTypeName maps a claimed device type code to a display name for
// use in notifications; unrecognised codes render as "Unknown".
func DeviceTypeName(deviceType int) string {
	if name, ok := deviceTypeNames[deviceType]; ok {
		return name
	}
	return "Unknown"
}
