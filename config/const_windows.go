package config

const (
	_etc = `C:\ProgramData\competency`
	_var = `C:\ProgramData\competency\var`

	DefaultConfig      = _etc + `\competency.yaml`
	DefaultWorkdir     = _var
	DefaultCredentials = _etc + `\sheets\.google\credentials.json`
)
