package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/lexgraph"
	"github.com/siherrmann/lexgraph/core/pipeline"
	"github.com/siherrmann/lexgraph/helper"
	"github.com/siherrmann/lexgraph/model"
)

const sampleDocument = `Amazon Web Services offers cloud computing services. EC2 provides resizable compute capacity. S3 offers durable object storage. Both services run in data centers around the world.`

const sampleExtraction = `topic: Cloud Computing
entities:
Amazon Web Services|Company
EC2|Service
S3|Service
proposition: Amazon Web Services offers the EC2 compute service
Amazon Web Services|offers|EC2
proposition: Amazon Web Services offers the S3 storage service
Amazon Web Services|offers|S3
`

func main() {
	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	config := model.DefaultIndexingConfig()
	config.UseChunkIDDelimiter = true

	lg, err := lexgraph.NewLexGraph(config)
	if err != nil {
		log.Fatalf("Failed to create lexgraph: %v", err)
	}
	defer lg.Close()

	if err := lg.ConnectDatabase(dbConfig); err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	// Sentence chunking without embeddings keeps the example fast; swap in
	// pipeline.DefaultEmbedder() for real vectors.
	lg.SetPipeline(pipeline.NewPipeline(pipeline.SentenceChunker(2), nil))

	doc := &model.Document{
		Title:   "Introduction to AWS",
		Source:  "indexing_example",
		Content: sampleDocument,
		Metadata: model.Metadata{
			"author": "Example Author",
		},
	}

	fmt.Println("Indexing document...")
	numNodes, err := lg.IndexDocument(doc, sampleExtraction)
	if err != nil {
		log.Fatalf("Failed to index document: %v", err)
	}
	fmt.Printf("Inserted %d nodes\n\n", numNodes)

	for _, nodeType := range []model.NodeType{
		model.NodeTypeSource,
		model.NodeTypeChunk,
		model.NodeTypeTopic,
		model.NodeTypeStatement,
		model.NodeTypeFact,
		model.NodeTypeEntity,
	} {
		count, err := lg.Nodes.CountNodesByType(nodeType)
		if err != nil {
			log.Fatalf("Failed to count nodes: %v", err)
		}
		fmt.Printf("%-12s %d\n", nodeType, count)
	}

	fmt.Println("\nIndexing example completed successfully!")
}
