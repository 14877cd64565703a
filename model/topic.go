package model

// Entity is a named entity extracted for a topic. Value holds the cleaned
// display form; Classification is the raw classification text from the
// extraction output.
type Entity struct {
	Value          string `json:"value"`
	Classification string `json:"classification"`
}

// Fact is a single subject-predicate-object relationship. Exactly one of
// Object and Complement is set: Object when the object side resolved to a
// declared entity of the topic, Complement when the object side had to be
// materialized as a local entity.
type Fact struct {
	Subject    *Entity `json:"subject"`
	Predicate  string  `json:"predicate"`
	Object     *Entity `json:"object,omitempty"`
	Complement *Entity `json:"complement,omitempty"`
}

// Statement is one proposition with the relationship lines parsed under
// it. Details collects raw lines that were non-empty but could not be
// parsed as a three-part relationship; they are kept for auditing, not
// discarded.
type Statement struct {
	Value   string   `json:"value"`
	Facts   []*Fact  `json:"facts,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Topic groups the entities and statements extracted for one subject area.
// Entities are keyed by their cleaned value and iterate in first-insertion
// order; duplicate keys are dropped, keeping the first-seen classification.
type Topic struct {
	Value      string       `json:"value"`
	Statements []*Statement `json:"statements,omitempty"`

	entityKeys []string
	entities   map[string]*Entity
}

// NewTopic creates an empty topic with the given raw value.
func NewTopic(value string) *Topic {
	return &Topic{
		Value:    value,
		entities: map[string]*Entity{},
	}
}

// AddEntity inserts entity under key if the key is not already present.
// It reports whether the entity was inserted.
func (t *Topic) AddEntity(key string, entity *Entity) bool {
	if _, ok := t.entities[key]; ok {
		return false
	}
	t.entities[key] = entity
	t.entityKeys = append(t.entityKeys, key)
	return true
}

// Entity looks up an entity by its cleaned key.
func (t *Topic) Entity(key string) (*Entity, bool) {
	entity, ok := t.entities[key]
	return entity, ok
}

// Entities returns the topic's entities in insertion order.
func (t *Topic) Entities() []*Entity {
	entities := make([]*Entity, 0, len(t.entityKeys))
	for _, key := range t.entityKeys {
		entities = append(entities, t.entities[key])
	}
	return entities
}

// EntityCount returns the number of distinct entities.
func (t *Topic) EntityCount() int {
	return len(t.entityKeys)
}

// IsEmpty reports whether the topic has neither entities nor statements.
// Empty topics are discarded before being added to a collection.
func (t *Topic) IsEmpty() bool {
	return len(t.entityKeys) == 0 && len(t.Statements) == 0
}

// TopicCollection is the ordered result of one parse call. It holds no
// cross-call state; every parse produces a fresh collection.
type TopicCollection struct {
	Topics []*Topic `json:"topics"`
}

// Add appends a topic to the collection.
func (c *TopicCollection) Add(topic *Topic) {
	c.Topics = append(c.Topics, topic)
}
