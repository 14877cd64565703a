package main

import (
	"fmt"
	"log"

	"github.com/siherrmann/lexgraph"
	"github.com/siherrmann/lexgraph/model"
)

const sampleDocument = `Amazon Web Services offers cloud computing services.
EC2 provides resizable compute capacity in the cloud, and S3 offers durable object storage.
Both services run in data centers around the world.`

const sampleExtraction = `topic: Cloud Computing
entities:
Amazon Web Services|Company
EC2|Service
S3|Service
proposition: Amazon Web Services offers the EC2 compute service
Amazon Web Services|offers|EC2
proposition: Amazon Web Services offers the S3 storage service
Amazon Web Services|offers|S3
proposition: EC2 runs in data centers around the world
EC2|runs in|data centers
`

func main() {
	// Pure extraction needs no database connection
	config := model.DefaultIndexingConfig()
	config.Tenant = "acme"

	lg, err := lexgraph.NewLexGraph(config)
	if err != nil {
		log.Fatalf("Failed to create lexgraph: %v", err)
	}

	metadata := model.Metadata{
		"author": "Example Author",
		"topic":  "cloud computing",
	}

	result, err := lg.ExtractGraphNodes(sampleDocument, metadata.PropertiesString("none"), sampleExtraction)
	if err != nil {
		log.Fatalf("Failed to extract graph nodes: %v", err)
	}

	fmt.Printf("Source ID: %s\n", result.SourceID)
	fmt.Printf("Tenant-scoped source ID: %s\n", lg.Identity.RewriteIDForTenant(result.SourceID))
	fmt.Printf("Parsed %d topic(s), %d garbage line(s)\n\n", len(result.Topics.Topics), len(result.Garbage))

	for _, topic := range result.Topics.Topics {
		fmt.Printf("Topic: %s\n", topic.Value)
		for _, entity := range topic.Entities() {
			fmt.Printf("  Entity: %s (%s)\n", entity.Value, entity.Classification)
		}
		for _, statement := range topic.Statements {
			fmt.Printf("  Statement: %s (%d fact(s))\n", statement.Value, len(statement.Facts))
		}
	}

	fmt.Printf("\nGenerated %d graph nodes:\n", len(result.Nodes))
	for _, node := range result.Nodes {
		fmt.Printf("  [%s] %s -> %v\n", node.Type, node.ID, node.Properties["value"])
	}
}
