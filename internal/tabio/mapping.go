package tabio

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/entolab/bugtally/schema"
)

// Lookup lines are "N description" with N a non-negative integer.
var mappingLineRe = regexp.MustCompile(`^(\d+)\s+(.*)$`)

// ReadMappingFile parses a lookup file into a map of description to
// integer weight. Blank lines are skipped; any other line that does not
// match the "N description" form is an error.
func ReadMappingFile(path string) (schema.FrequencyMap, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	mapping := schema.FrequencyMap{}
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		match := mappingLineRe.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("mapping file %s: line %q does not match 'N description'", path, line)
		}
		weight, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("mapping file %s: %w", path, err)
		}
		mapping[strings.TrimSpace(match[2])] = weight
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mapping file %s: %w", path, err)
	}
	return mapping, nil
}
