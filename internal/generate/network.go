package generate

import (
	"fmt"
	"sort"
	"strings"

	"sysforge/internal/config"
)

const firewallScript = `
log_phase "firewall: begin"
nft flush table inet sysforge 2>/dev/null || true
nft add table inet sysforge
nft add chain inet sysforge input '{ type filter hook input priority 0; }'
{{- range .Rules }}
{{- if .Allow }}
nft add rule inet sysforge input {{ .Protocol }} dport {{ .Port }} accept {{- if .Comment }} comment {{ .Comment | squote }}{{ end }}
{{- else }}
nft add rule inet sysforge input {{ .Protocol }} dport {{ .Port }} drop {{- if .Comment }} comment {{ .Comment | squote }}{{ end }}
{{- end }}
{{- end }}
log_phase "firewall: end"
`

// generateNetwork emits per-interface network descriptions, the resolver
// configuration and the firewall script. Interfaces are emitted in name
// order, firewall rules in port order.
func generateNetwork(cfg *config.Configuration) ([]Artifact, error) {
	net := cfg.Network
	if len(net.Interfaces) == 0 && len(net.Nameservers) == 0 && len(net.FirewallRules) == 0 {
		return nil, nil
	}

	var artifacts []Artifact

	ifaces := make([]config.NetworkInterface, len(net.Interfaces))
	copy(ifaces, net.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].Name < ifaces[j].Name })
	for _, iface := range ifaces {
		artifacts = append(artifacts, Artifact{
			Path:    "configs/" + iface.Name + ".network",
			Content: networkFile(iface),
			Kind:    KindConfigFile,
		})
	}

	if len(net.Nameservers) > 0 {
		var sb strings.Builder
		for _, ns := range net.Nameservers {
			fmt.Fprintf(&sb, "nameserver %s\n", ns)
		}
		artifacts = append(artifacts, Artifact{
			Path:    "configs/resolv.conf",
			Content: sb.String(),
			Kind:    KindConfigFile,
		})
	}

	if len(net.FirewallRules) > 0 {
		rules := make([]config.FirewallRule, len(net.FirewallRules))
		copy(rules, net.FirewallRules)
		sort.Slice(rules, func(i, j int) bool { return rules[i].Port < rules[j].Port })
		for i := range rules {
			if rules[i].Protocol == "" {
				rules[i].Protocol = "tcp"
			}
		}

		content, err := renderScript("firewall", firewallScript, struct {
			Rules []config.FirewallRule
		}{rules})
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Path: "scripts/60-firewall.sh", Content: content, Kind: KindScript})
	}

	return artifacts, nil
}

// networkFile renders one interface as a systemd-networkd style INI block.
func networkFile(iface config.NetworkInterface) string {
	var sb strings.Builder
	sb.WriteString("[Match]\n")
	fmt.Fprintf(&sb, "Name=%s\n", iface.Name)
	if iface.MTU > 0 {
		sb.WriteString("\n[Link]\n")
		fmt.Fprintf(&sb, "MTUBytes=%d\n", iface.MTU)
	}
	sb.WriteString("\n[Network]\n")
	if iface.DHCP {
		sb.WriteString("DHCP=yes\n")
	} else {
		if iface.Address != "" {
			fmt.Fprintf(&sb, "Address=%s\n", iface.Address)
		}
		if iface.Gateway != "" {
			fmt.Fprintf(&sb, "Gateway=%s\n", iface.Gateway)
		}
	}
	return sb.String()
}
