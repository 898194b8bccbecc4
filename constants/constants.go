package constants

import (
	"os"
	"strconv"
	"time"
)

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

// GetResultTTL is how long a processed archive stays downloadable from the server.
func GetResultTTL() time.Duration {
	ttl, err := time.ParseDuration(os.Getenv("RESULT_TTL"))
	if err != nil || ttl <= 0 {
		return 10 * time.Minute
	}
	return ttl
}

func GetS3Bucket() string {
	return os.Getenv("S3_BUCKET")
}

// GetS3Endpoint is empty unless pointing at a local stack (localstack, minio)
func GetS3Endpoint() string {
	return os.Getenv("S3_ENDPOINT")
}

func GetAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// velocities and the reduction amount are 7-bit
const MaxVelocity = 127

const DefaultReduction = 30

const MaxUploadSize = 32 * 1024 * 1024
