package contracts

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, DataFormatVersion, info.DataFormat)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Architecture)
}

func TestGetVersionString(t *testing.T) {
	assert.Equal(t, "tablekit v"+Version, GetVersionString())
}

func TestGetFullVersionString(t *testing.T) {
	full := GetFullVersionString()

	assert.Contains(t, full, GetVersionString())
	assert.Contains(t, full, "go: "+runtime.Version())
	assert.Contains(t, full, runtime.GOOS+"/"+runtime.GOARCH)
}
