package constants

import "time"

const (
	// DefaultServiceName is the PAM service the bridge authenticates against.
	DefaultServiceName = "pamauth"
	// DefaultTty is the logical terminal reported to the backend.
	DefaultTty = "web"
	// DefaultFailDelay matches pam_fail_delay(pamh, 1).
	DefaultFailDelay = time.Microsecond

	DefaultPamauthCommand      = "/opt/splunk/bin/pamauth"
	DefaultPasswdFilename      = "/etc/passwd"
	DefaultLoginShellSubstring = "/bin/bash"

	DefaultPamauthdHttpAddress = ":6925"
	DefaultPamauthdRealm       = "pamauthd"
	DefaultPamauthdConfigFile  = "/etc/pamauthd/config.yml"

	// MaxPasswordLength mirrors reading with fgets into a 1024 byte buffer.
	MaxPasswordLength = 1023
)
