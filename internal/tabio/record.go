package tabio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/entolab/bugtally/schema"
)

// ReadRecordFile parses a single record file into a bug name and its
// region values.
//
// The first non-blank line is the bug name. Every following non-blank
// line has the form "value: region1, region2, ..." and assigns the value
// before the first ':' to each listed region. Later lines win when a
// region repeats.
func ReadRecordFile(path string) (string, schema.RegionMap, error) {
	fd, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)

	var name string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			name = line
			break
		}
	}
	if name == "" {
		if err := scanner.Err(); err != nil {
			return "", nil, fmt.Errorf("read record file %s: %w", path, err)
		}
		return "", nil, fmt.Errorf("record file %s has no bug name line", path)
	}

	regions := schema.RegionMap{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value, regionList, found := strings.Cut(line, ":")
		if !found {
			return "", nil, fmt.Errorf("record file %s: line %q has no ':' separator", path, line)
		}
		value = strings.TrimSpace(value)
		for _, region := range strings.Split(regionList, ",") {
			region = strings.TrimSpace(region)
			if region == "" {
				continue
			}
			regions[region] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("read record file %s: %w", path, err)
	}
	return name, regions, nil
}
