// Package domain defines the core domain models for sshblend.
package domain

import (
	"reflect"
	"testing"
)

func TestConditions_Empty(t *testing.T) {
	tests := []struct {
		name string
		cond Conditions
		want bool
	}{
		{name: "zero value", cond: Conditions{}, want: true},
		{name: "ssid only", cond: Conditions{SSIDs: []string{"Net"}}, want: false},
		{name: "gateway only", cond: Conditions{Gateways: []Gateway{{IP: "10.0.0.1"}}}, want: false},
		{name: "ping only", cond: Conditions{PingTargets: []string{"10.0.0.1"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditions_AddLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Conditions
	}{
		{
			name: "ssid list",
			line: "LocalSSID HomeWiFi, Cafe Net ,Office",
			want: Conditions{SSIDs: []string{"HomeWiFi", "Cafe Net", "Office"}},
		},
		{
			name: "ssid empty items dropped",
			line: "LocalSSID ,HomeWiFi,,",
			want: Conditions{SSIDs: []string{"HomeWiFi"}},
		},
		{
			name: "gateway with and without mac",
			line: "LocalGateway 192.168.1.1|AA:BB:CC:DD:EE:FF, 10.0.0.1",
			want: Conditions{Gateways: []Gateway{
				{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"},
				{IP: "10.0.0.1"},
			}},
		},
		{
			name: "gateway with empty ip dropped",
			line: "LocalGateway |aa:bb:cc:dd:ee:ff,192.168.1.1",
			want: Conditions{Gateways: []Gateway{{IP: "192.168.1.1"}}},
		},
		{
			name: "ping targets",
			line: "LocalPing 192.168.1.10,printer.lan",
			want: Conditions{PingTargets: []string{"192.168.1.10", "printer.lan"}},
		},
		{
			name: "tab separated key",
			line: "LocalPing\t10.0.0.1",
			want: Conditions{PingTargets: []string{"10.0.0.1"}},
		},
		{
			name: "unknown key ignored",
			line: "LocalThing whatever",
			want: Conditions{},
		},
		{
			name: "key without value ignored",
			line: "LocalSSID",
			want: Conditions{},
		},
		{
			name: "comment ignored",
			line: "# LocalSSID HomeWiFi",
			want: Conditions{},
		},
		{
			name: "blank ignored",
			line: "   ",
			want: Conditions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cond Conditions
			cond.addLine(tt.line)
			if !reflect.DeepEqual(cond, tt.want) {
				t.Errorf("addLine(%q) = %#v, want %#v", tt.line, cond, tt.want)
			}
		})
	}
}

func TestConditions_RepeatedKeysAccumulate(t *testing.T) {
	var cond Conditions
	cond.addLine("LocalSSID First")
	cond.addLine("LocalSSID Second")
	cond.addLine("LocalPing 10.0.0.1")
	cond.addLine("LocalPing 10.0.0.2")

	wantSSIDs := []string{"First", "Second"}
	if !reflect.DeepEqual(cond.SSIDs, wantSSIDs) {
		t.Errorf("SSIDs = %v, want %v", cond.SSIDs, wantSSIDs)
	}
	wantPing := []string{"10.0.0.1", "10.0.0.2"}
	if !reflect.DeepEqual(cond.PingTargets, wantPing) {
		t.Errorf("PingTargets = %v, want %v", cond.PingTargets, wantPing)
	}
	if got := cond.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestParseGateway(t *testing.T) {
	tests := []struct {
		item   string
		want   Gateway
		wantOK bool
	}{
		{item: "192.168.1.1", want: Gateway{IP: "192.168.1.1"}, wantOK: true},
		{item: "192.168.1.1|aa:bb:cc:dd:ee:ff", want: Gateway{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"}, wantOK: true},
		{item: "192.168.1.1|AA:BB:CC:DD:EE:FF", want: Gateway{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"}, wantOK: true},
		{item: "192.168.1.1|AA-BB-CC-DD-EE-FF", want: Gateway{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"}, wantOK: true},
		{item: " 192.168.1.1 | aa:bb:cc:dd:ee:ff ", want: Gateway{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"}, wantOK: true},
		{item: "192.168.1.1|", want: Gateway{IP: "192.168.1.1"}, wantOK: true},
		{item: "|aa:bb:cc:dd:ee:ff", wantOK: false},
		{item: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			got, ok := parseGateway(tt.item)
			if ok != tt.wantOK {
				t.Fatalf("parseGateway(%q) ok = %v, want %v", tt.item, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseGateway(%q) = %#v, want %#v", tt.item, got, tt.want)
			}
		})
	}
}

func TestGateway_String(t *testing.T) {
	if got := (Gateway{IP: "10.0.0.1"}).String(); got != "10.0.0.1" {
		t.Errorf("String() = %q, want %q", got, "10.0.0.1")
	}
	if got := (Gateway{IP: "10.0.0.1", MAC: "aa:bb"}).String(); got != "10.0.0.1|aa:bb" {
		t.Errorf("String() = %q, want %q", got, "10.0.0.1|aa:bb")
	}
}
