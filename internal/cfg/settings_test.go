package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{
			name: "modify with built-in device",
			s:    Settings{Input: "in.mp4", Output: "out.mp4", Device: "iPhone 14 Pro"},
		},
		{
			name: "modify with custom profile",
			s:    Settings{Input: "in.mp4", Output: "out.mp4", CustomProfile: "p.json"},
		},
		{
			name: "strip alone",
			s:    Settings{Input: "in.mp4", Output: "out.mp4", Strip: true},
		},
		{
			name:    "strip with device rejected",
			s:       Settings{Input: "in.mp4", Output: "out.mp4", Strip: true, Device: "iPhone 14 Pro"},
			wantErr: true,
		},
		{
			name:    "strip with custom profile rejected",
			s:       Settings{Input: "in.mp4", Output: "out.mp4", Strip: true, CustomProfile: "p.json"},
			wantErr: true,
		},
		{
			name:    "strip with custom date rejected",
			s:       Settings{Input: "in.mp4", Output: "out.mp4", Strip: true, CustomDate: "2024-06-01 12:00:00"},
			wantErr: true,
		},
		{
			name:    "missing output",
			s:       Settings{Input: "in.mp4", Device: "iPhone 14 Pro"},
			wantErr: true,
		},
		{
			name:    "no profile source and no strip",
			s:       Settings{Input: "in.mp4", Output: "out.mp4"},
			wantErr: true,
		},
		{
			name:    "malformed custom date",
			s:       Settings{Input: "in.mp4", Output: "out.mp4", Device: "iPhone 14 Pro", CustomDate: "not a date"},
			wantErr: true,
		},
		{
			name: "list-devices needs no files",
			s:    Settings{ListDevices: true},
		},
		{
			name: "show-metadata needs no files",
			s:    Settings{ShowMetadata: "in.mp4"},
		},
		{
			name: "gui needs no files",
			s:    Settings{GUI: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSettings(tc.s)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
