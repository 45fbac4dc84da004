package definitions

import _ "embed"

//go:embed definitions.json
var embeddedDefinitions []byte
