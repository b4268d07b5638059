package dns

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

func TestRoute53RecordsInput(t *testing.T) {
	t.Run("nil cursor starts fresh", func(t *testing.T) {
		in := route53RecordsInput("/hostedzone/Z123", nil)
		if aws.ToString(in.HostedZoneId) != "/hostedzone/Z123" {
			t.Errorf("HostedZoneId = %s", aws.ToString(in.HostedZoneId))
		}
		if in.StartRecordName != nil || in.StartRecordIdentifier != nil {
			t.Error("fresh listing must not carry continuation markers")
		}
	})

	t.Run("cursor without identifier", func(t *testing.T) {
		in := route53RecordsInput("Z123", &RecordCursor{
			NextName: "b.example.com.",
			NextType: "A",
		})
		if aws.ToString(in.StartRecordName) != "b.example.com." {
			t.Errorf("StartRecordName = %s", aws.ToString(in.StartRecordName))
		}
		if in.StartRecordType != r53types.RRTypeA {
			t.Errorf("StartRecordType = %s", in.StartRecordType)
		}
		if in.StartRecordIdentifier != nil {
			t.Error("StartRecordIdentifier must stay unset without a marker")
		}
	})

	t.Run("cursor carries set identifier", func(t *testing.T) {
		in := route53RecordsInput("Z123", &RecordCursor{
			NextName: "geo.example.com.",
			NextType: "CNAME",
			NextID:   "eu",
		})
		if aws.ToString(in.StartRecordIdentifier) != "eu" {
			t.Errorf("StartRecordIdentifier = %s", aws.ToString(in.StartRecordIdentifier))
		}
	})
}

func TestFromRoute53RecordSet(t *testing.T) {
	t.Run("standard multi-value set", func(t *testing.T) {
		rs := r53types.ResourceRecordSet{
			Name: aws.String("www.example.com."),
			Type: r53types.RRTypeA,
			TTL:  aws.Int64(300),
			ResourceRecords: []r53types.ResourceRecord{
				{Value: aws.String("192.0.2.1")},
				{Value: aws.String("192.0.2.2")},
			},
		}

		set := fromRoute53RecordSet(rs)
		if set.IsAlias() {
			t.Fatal("standard set reported as alias")
		}
		if set.TTL == nil || *set.TTL != 300 {
			t.Errorf("TTL = %v", set.TTL)
		}
		if len(set.Values) != 2 {
			t.Errorf("Values = %v", set.Values)
		}
	})

	t.Run("alias set", func(t *testing.T) {
		rs := r53types.ResourceRecordSet{
			Name: aws.String("example.com."),
			Type: r53types.RRTypeA,
			AliasTarget: &r53types.AliasTarget{
				HostedZoneId:         aws.String("Z2FDTNDATAQYW2"),
				DNSName:              aws.String("d123.cloudfront.net."),
				EvaluateTargetHealth: true,
			},
		}

		set := fromRoute53RecordSet(rs)
		if !set.IsAlias() {
			t.Fatal("alias set not reported as alias")
		}
		if set.Alias.HostedZoneID != "Z2FDTNDATAQYW2" || !set.Alias.EvaluateTargetHealth {
			t.Errorf("Alias = %+v", set.Alias)
		}
		if set.TTL != nil || len(set.Values) != 0 {
			t.Errorf("alias set carries TTL/values: ttl=%v values=%v", set.TTL, set.Values)
		}
	})

	t.Run("routing policy attributes", func(t *testing.T) {
		rs := r53types.ResourceRecordSet{
			Name:          aws.String("geo.example.com."),
			Type:          r53types.RRTypeCname,
			TTL:           aws.Int64(60),
			SetIdentifier: aws.String("eu"),
			Weight:        aws.Int64(10),
			Region:        r53types.ResourceRecordSetRegionEuWest1,
			ResourceRecords: []r53types.ResourceRecord{
				{Value: aws.String("eu.example.com.")},
			},
		}

		set := fromRoute53RecordSet(rs)
		if set.SetIdentifier != "eu" {
			t.Errorf("SetIdentifier = %s", set.SetIdentifier)
		}
		if set.Weight == nil || *set.Weight != 10 {
			t.Errorf("Weight = %v", set.Weight)
		}
		if set.Region != "eu-west-1" {
			t.Errorf("Region = %s", set.Region)
		}
	})
}
