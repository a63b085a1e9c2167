package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Log4j recognizes log4j 1.x (<log4j:configuration>) and log4j2
// (<Configuration>) XML configuration files.
type Log4j struct{}

func NewLog4j() *Log4j { return &Log4j{} }

func (Log4j) Name() string { return "Log4j Configuration" }

func (Log4j) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	switch {
	case tree.Name.Local == "configuration" && tree.Name.Space != "":
		return true, 0.95
	case tree.Name.Local == "Configuration":
		appenders := hasChild(tree, "Appenders") || hasChild(tree, "appenders")
		loggers := hasChild(tree, "Loggers") || hasChild(tree, "loggers")
		if appenders || loggers {
			return true, 0.9
		}
		return false, 0
	default:
		return false, 0
	}
}

func (l Log4j) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := l.CanHandle(tree, namespaces)
	version := "1.x"
	if tree.Name.Local == "Configuration" {
		version = "2.x"
	}
	return DocumentTypeInfo{
		TypeName:   l.Name(),
		Confidence: confidence,
		Version:    version,
	}
}

func (l Log4j) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := l.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: l.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"logging configuration audit", "appender/logger inventory"},
		FilePath:         filePath,
		HandlerUsed:      l.Name(),
		Namespaces:       rec.NamespaceMap,
	}
}

func (Log4j) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	appenderCount := countDescendants(tree, "appender") + countDescendants(tree, "Appender")
	loggerCount := countDescendants(tree, "logger") + countDescendants(tree, "Logger")
	return map[string]interface{}{
		"appender_count": appenderCount,
		"logger_count":   loggerCount,
		SectionRootsKey:  sectionRootsOf(tree),
	}
}
