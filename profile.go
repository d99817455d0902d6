package infobox

import "strings"

// Profile groups the settings that vary between wikis: which template to
// extract and which identifier parameters the downstream checks inspect.
type Profile struct {
	Template            string   `yaml:"template"`
	DuplicateParameters []string `yaml:"duplicate_parameters"`
	IdentifierParameter string   `yaml:"identifier_parameter"`
}

// DefaultProfile returns the profile for the Czech chemical compound infobox.
func DefaultProfile() *Profile {
	return &Profile{
		Template:            DefaultTemplate,
		DuplicateParameters: append([]string(nil), DefaultIdentifierParameters...),
		IdentifierParameter: DefaultValidatedParameter,
	}
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Template) == "" {
		return Errorf(EINVALID, "profile template required")
	}
	if len(p.DuplicateParameters) == 0 {
		return Errorf(EINVALID, "profile duplicate parameters required")
	}
	for _, name := range p.DuplicateParameters {
		if strings.TrimSpace(name) == "" {
			return Errorf(EINVALID, "profile duplicate parameter must not be empty")
		}
	}
	if strings.TrimSpace(p.IdentifierParameter) == "" {
		return Errorf(EINVALID, "profile identifier parameter required")
	}
	return nil
}
