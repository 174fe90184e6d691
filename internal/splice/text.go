package splice

import (
	"fmt"
	"strings"

	"github.com/dosanma1/modelforge/internal/errors"
)

const (
	// XMLParametersAnchor closes the parameter block of an xml document.
	XMLParametersAnchor = "    </parameters>"

	// XMLServicesAnchor closes the service block of an xml document.
	XMLServicesAnchor = "    </services>"

	// PHPParametersAnchor marks the end of parameters in a php document.
	PHPParametersAnchor = "// END PARAMETERS"

	// PHPServicesAnchor marks the end of services in a php document.
	PHPServicesAnchor = "// END SERVICES"
)

// TextSplicer inserts text fragments right before fixed anchor substrings,
// leaving the rest of the document byte for byte as it was.
type TextSplicer struct {
	ParametersAnchor string
	ServicesAnchor   string

	Parameter func(reg Registration) string
	Service   func(reg Registration) string
}

// NewXMLSplicer creates the splicer for xml service definitions.
func NewXMLSplicer() *TextSplicer {
	return &TextSplicer{
		ParametersAnchor: XMLParametersAnchor,
		ServicesAnchor:   XMLServicesAnchor,
		Parameter: func(reg Registration) string {
			return fmt.Sprintf("        <parameter key=\"%s\">%s</parameter>\n",
				reg.Aliases.ManagerClassKey(), reg.ManagerClass)
		},
		Service: func(reg Registration) string {
			var b strings.Builder
			fmt.Fprintf(&b, "        <!--Default %s manager-->\n", reg.ModelName)
			fmt.Fprintf(&b, "        <service id=\"%s\" class=\"%%%s%%\">\n", reg.Aliases.ServiceID(), reg.Aliases.ManagerClassKey())
			fmt.Fprintf(&b, "            <argument type=\"service\" id=\"%s\" />\n", reg.Driver.ServiceID())
			fmt.Fprintf(&b, "            <argument>%%%s%%</argument>\n", reg.Aliases.ModelClassKey())
			b.WriteString("        </service>\n\n")
			return b.String()
		},
	}
}

// NewPHPSplicer creates the splicer for php service definitions.
func NewPHPSplicer() *TextSplicer {
	return &TextSplicer{
		ParametersAnchor: PHPParametersAnchor,
		ServicesAnchor:   PHPServicesAnchor,
		Parameter: func(reg Registration) string {
			return fmt.Sprintf("$container->setParameter('%s', '%s');\n",
				reg.Aliases.ManagerClassKey(), reg.ManagerClass)
		},
		Service: func(reg Registration) string {
			var b strings.Builder
			fmt.Fprintf(&b, "// Default %s manager\n", reg.ModelName)
			fmt.Fprintf(&b, "$container->setDefinition('%s', new Definition(\n", reg.Aliases.ServiceID())
			fmt.Fprintf(&b, "    '%%%s%%',\n", reg.Aliases.ManagerClassKey())
			b.WriteString("    array(\n")
			fmt.Fprintf(&b, "        new Reference('%s'),\n", reg.Driver.ServiceID())
			fmt.Fprintf(&b, "        '%%%s%%',\n", reg.Aliases.ModelClassKey())
			b.WriteString("    )\n));\n\n")
			return b.String()
		},
	}
}

// Splice implements Splicer. A registration is a duplicate when its manager
// class key or service id occurs anywhere in the document.
func (s *TextSplicer) Splice(doc string, reg Registration) (string, error) {
	if strings.Contains(doc, reg.Aliases.ManagerClassKey()) || strings.Contains(doc, reg.Aliases.ServiceID()) {
		return doc, errors.NewDuplicateRegistrationError(reg.Aliases.ManagerClassKey(), "")
	}

	for _, anchor := range []string{s.ParametersAnchor, s.ServicesAnchor} {
		if !strings.Contains(doc, anchor) {
			return doc, errors.NewAnchorMissingError(anchor, "")
		}
	}

	doc = strings.Replace(doc, s.ParametersAnchor, s.Parameter(reg)+s.ParametersAnchor, 1)
	doc = strings.Replace(doc, s.ServicesAnchor, s.Service(reg)+s.ServicesAnchor, 1)

	return doc, nil
}
