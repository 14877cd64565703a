package extract

import (
	"strings"

	"github.com/siherrmann/lexgraph/model"
)

const (
	// DefaultTopic is the value of the implicit topic that content
	// preceding any "topic:" header attaches to.
	DefaultTopic = "context"

	// LocalEntityClassification marks entities that were materialized from
	// a relationship line instead of being declared in the entity list.
	LocalEntityClassification = "__local__"

	// unparseableEntityMarker prefixes garbage entries for entity lines
	// that did not split into value|classification.
	unparseableEntityMarker = "UNPARSEABLE ENTITY"

	topicHeader       = "topic:"
	entitiesHeader    = "entities:"
	propositionHeader = "proposition:"
)

// parseState tracks which section of the extraction grammar the parser is
// currently inside.
type parseState int

const (
	stateNone parseState = iota
	stateTopic
	stateEntities
	stateStatement
)

// ParseExtractedTopics parses the line-oriented topic-extraction format
// produced by an upstream language model:
//
//	topic: <name>
//	entities:
//	<value>|<classification>
//	proposition: <statement text>
//	<subject>|<predicate>|<object>
//
// The parser never fails: model output is inherently noisy, so malformed
// entity lines are collected in the returned garbage list and malformed
// relationship lines are attached to their statement's details. Topics
// with neither entities nor statements are discarded.
func ParseExtractedTopics(raw string) (*model.TopicCollection, []string) {
	collection := &model.TopicCollection{}
	var garbage []string

	// Content before any topic: header still needs somewhere to attach.
	topic := model.NewTopic(DefaultTopic)
	var statement *model.Statement
	state := stateNone

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, topicHeader):
			if !topic.IsEmpty() {
				collection.Add(topic)
			}
			topic = model.NewTopic(headerValue(line))
			statement = nil
			state = stateTopic
		case strings.HasPrefix(line, entitiesHeader):
			state = stateEntities
		case strings.HasPrefix(line, propositionHeader):
			statement = &model.Statement{Value: headerValue(line)}
			topic.Statements = append(topic.Statements, statement)
			state = stateStatement
		default:
			switch state {
			case stateEntities:
				parseEntityLine(line, topic, &garbage)
			case stateStatement:
				parseRelationshipLine(line, topic, statement)
			default:
				// No recognized context for this line.
				garbage = append(garbage, line)
			}
		}
	}

	if !topic.IsEmpty() {
		collection.Add(topic)
	}

	return collection, garbage
}

// headerValue extracts the value of a "topic:" or "proposition:" header by
// splitting on ":" and joining the remaining segments with the empty
// string. Known limitation preserved from the original format: colons that
// were part of the value itself are dropped ("topic: Key: Value Pair"
// becomes "Key Value Pair"), and downstream identifiers are derived from
// the colon-less form.
func headerValue(line string) string {
	segments := strings.Split(line, ":")
	return strings.TrimSpace(strings.Join(segments[1:], ""))
}

// parseEntityLine handles one line of the entities section. A valid line
// has exactly one "|" separating value and classification; anything else
// is recorded as garbage. Duplicate entities (same cleaned value) are
// silently dropped, keeping the first-seen classification.
func parseEntityLine(line string, topic *model.Topic, garbage *[]string) {
	parts := strings.Split(line, "|")
	if len(parts) != 2 {
		*garbage = append(*garbage, unparseableEntityMarker+": "+line)
		return
	}

	value := Clean(parts[0])
	classification := strings.TrimSpace(parts[1])
	topic.AddEntity(value, &model.Entity{Value: value, Classification: classification})
}

// parseRelationshipLine handles one line of a statement section. A valid
// line has exactly three "|"-delimited segments. The subject and object
// are resolved against the topic's declared entities; unresolved sides are
// materialized as local entities, and a line whose subject is unknown is
// additionally kept in the statement's details.
func parseRelationshipLine(line string, topic *model.Topic, statement *model.Statement) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		statement.Details = append(statement.Details, line)
		return
	}

	subjectValue := Clean(parts[0])
	predicate := strings.TrimSpace(parts[1])
	objectValue := Clean(parts[2])

	var fact *model.Fact
	if subject, ok := topic.Entity(subjectValue); ok {
		if object, ok := topic.Entity(objectValue); ok {
			fact = &model.Fact{Subject: subject, Predicate: predicate, Object: object}
		} else {
			fact = &model.Fact{
				Subject:    subject,
				Predicate:  predicate,
				Complement: &model.Entity{Value: objectValue, Classification: LocalEntityClassification},
			}
		}
	} else {
		fact = &model.Fact{
			Subject:    &model.Entity{Value: subjectValue, Classification: LocalEntityClassification},
			Predicate:  predicate,
			Complement: &model.Entity{Value: objectValue, Classification: LocalEntityClassification},
		}
		statement.Details = append(statement.Details, line)
	}

	statement.Facts = append(statement.Facts, fact)
}
