package database

import (
	"context"
	"testing"

	"freight_opcost/internal/infrastructure/config"
)

func TestNewAWSConfig(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", t.TempDir()+"/missing-config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", t.TempDir()+"/missing-credentials")

	cfg := config.DynamoDBConfig{Region: "ap-southeast-3", AccessKeyID: "local", SecretAccessKey: "secret"}
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if awsCfg.Region != "ap-southeast-3" {
		t.Fatalf("unexpected region %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client := ConnectDynamoDB(config.DynamoDBConfig{
		Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", Endpoint: "http://localhost:8000",
	})
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %v", got)
	}
}
