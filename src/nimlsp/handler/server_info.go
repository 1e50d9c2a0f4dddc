package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/uber/nimlsp/src/nimlsp/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyServiceName = "service.name"

	_infoFileKeyService = "service"
	_infoFileKeyPid     = "pid"
)

// Output the identity of this process so that IDE launchers can tell which daemon answered at the published address.
// The JSON-RPC listener adds its own address field once it is bound.
func outputServiceInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var name string
	if err := cfg.Get(_configKeyServiceName).Populate(&name); err != nil {
		return fmt.Errorf("loading service name: %v", err)
	}
	if name == "" {
		return fmt.Errorf("missing field for key %q", _configKeyServiceName)
	}

	if err := infofile.UpdateField(_infoFileKeyService, name); err != nil {
		return fmt.Errorf("outputting service name to info file: %w", err)
	}
	if err := infofile.UpdateField(_infoFileKeyPid, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting pid to info file: %w", err)
	}
	return nil
}
