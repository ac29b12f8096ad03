package profiles

// builtinEntry pairs a device name with its profile, preserving the
// presentation order of the device list.
type builtinEntry struct {
	name    string
	profile Profile
}

var builtinProfiles = []builtinEntry{
	{"iPhone 14 Pro", Profile{
		"make":          "Apple",
		"model":         "iPhone 14 Pro",
		"software":      "iOS 16.0",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "iPhone 14 Pro back triple camera 6.86mm f/1.78",
	}},
	{"Samsung Galaxy S24 Ultra", Profile{
		"make":          "Samsung",
		"model":         "SM-S928B",
		"software":      "Android 14",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Samsung Galaxy S24 Ultra",
	}},
	{"Google Pixel 9 Pro", Profile{
		"make":          "Google",
		"model":         "Pixel 9 Pro",
		"software":      "Android 15",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Google Pixel 9 Pro",
	}},
	{"Samsung Galaxy Z Fold 6", Profile{
		"make":          "Samsung",
		"model":         "SM-F956B",
		"software":      "Android 14",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Samsung Galaxy Z Fold 6",
	}},
	{"OnePlus Open", Profile{
		"make":          "OnePlus",
		"model":         "CPH2517",
		"software":      "Android 14",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "OnePlus Open",
	}},
	{"Xiaomi 15", Profile{
		"make":          "Xiaomi",
		"model":         "2405CPH5DC",
		"software":      "Android 15",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Xiaomi 15",
	}},
	{"Huawei Mate 60 Pro", Profile{
		"make":          "Huawei",
		"model":         "DCO-AL00",
		"software":      "HarmonyOS 4.0",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Huawei Mate 60 Pro",
	}},
	{"Sony Xperia 5 VI", Profile{
		"make":          "Sony",
		"model":         "XQ-DQ74",
		"software":      "Android 14",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Sony Xperia 5 VI",
	}},
	{"Oppo Find N3", Profile{
		"make":          "Oppo",
		"model":         "CPH2511",
		"software":      "Android 13",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Oppo Find N3",
	}},
	{"Vivo X100 Pro", Profile{
		"make":          "Vivo",
		"model":         "V2303A",
		"software":      "Android 14",
		"encoder":       "HEVC (H.265)",
		"creation_tool": "Vivo X100 Pro",
	}},
}
