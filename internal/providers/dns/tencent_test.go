package dns

import (
	"testing"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	dnspod "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/dnspod/v20210323"
)

func TestFromTencentRecord(t *testing.T) {
	item := &dnspod.RecordListItem{
		Name:   common.StringPtr("www"),
		Type:   common.StringPtr("A"),
		Value:  common.StringPtr("192.0.2.1"),
		TTL:    common.Uint64Ptr(600),
		Weight: common.Uint64Ptr(10),
	}

	set := fromTencentRecord(item, "example.com")

	if set.Name != "www.example.com." {
		t.Errorf("Name = %s", set.Name)
	}
	if set.Type != "A" {
		t.Errorf("Type = %s", set.Type)
	}
	if set.TTL == nil || *set.TTL != 600 {
		t.Errorf("TTL = %v, want 600", set.TTL)
	}
	if len(set.Values) != 1 || set.Values[0] != "192.0.2.1" {
		t.Errorf("Values = %v", set.Values)
	}
	if set.Weight == nil || *set.Weight != 10 {
		t.Errorf("Weight = %v, want 10", set.Weight)
	}
}

func TestFromTencentRecord_NilFields(t *testing.T) {
	set := fromTencentRecord(&dnspod.RecordListItem{}, "example.com")

	if set.Name != "example.com." {
		t.Errorf("Name = %s, want apex for nil label", set.Name)
	}
	if set.TTL != nil {
		t.Errorf("TTL = %v, want nil", set.TTL)
	}
	if set.Weight != nil {
		t.Errorf("Weight = %v, want nil", set.Weight)
	}
	if len(set.Values) != 1 || set.Values[0] != "" {
		t.Errorf("Values = %v, want single empty value", set.Values)
	}
}

func TestFromTencentRecord_ApexLabel(t *testing.T) {
	item := &dnspod.RecordListItem{
		Name:  common.StringPtr("@"),
		Type:  common.StringPtr("MX"),
		Value: common.StringPtr("10 mail.example.com."),
		TTL:   common.Uint64Ptr(300),
	}

	set := fromTencentRecord(item, "example.com")
	if set.Name != "example.com." {
		t.Errorf("Name = %s, want apex", set.Name)
	}
}
