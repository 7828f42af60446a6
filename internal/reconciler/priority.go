package reconciler

import "sort"

// servicePriorities is the static priority table used for sequential batch
// reloads: infrastructure-layer services run before application-layer
// services. Lower values dispatch first.
var servicePriorities = map[string]int{
	"dbus":             0,
	"systemd-networkd": 10,
	"NetworkManager":   10,
	"systemd-resolved": 20,
	"firewalld":        30,
	"sshd":             40,
	"chronyd":          50,
}

// defaultPriority is assigned to services absent from the table.
const defaultPriority = 100

func priorityOf(name string) int {
	if priority, ok := servicePriorities[name]; ok {
		return priority
	}
	return defaultPriority
}

// sortByPriority returns the names ordered by the static priority table.
// Names with equal priority keep their caller-supplied order.
func sortByPriority(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityOf(sorted[i]) < priorityOf(sorted[j])
	})
	return sorted
}
