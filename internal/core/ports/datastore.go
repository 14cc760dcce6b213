package ports

// Record is a flat mapping of attribute name to value, the unit of storage of
// a Datastore. One attribute per collection is designated the identifier
// attribute and must stay unique among that collection's records; the store
// itself does not enforce this.
type Record map[string]any

// Datastore is the generic persistence substrate consumed by the
// repositories. It is addressable by collection (entity) name and makes no
// assumption about record schemas, so any backend can implement it. Every
// lookup signals absence through its ok / empty return value, never through
// an error or panic.
type Datastore interface {
	// AddEntity declares a collection. It is idempotent.
	AddEntity(entity string)

	// Create appends record to the entity's collection, declaring the
	// collection on demand, and returns the stored record. Identifier
	// uniqueness is the caller's responsibility.
	Create(entity string, record Record) Record

	// Retrieve returns the first record whose key attribute equals value.
	// ok is false when the collection is absent or nothing matches.
	Retrieve(entity, key string, value any) (Record, bool)

	// Filter returns all records of the collection when key is empty or no
	// values are given, otherwise the records whose key attribute is one of
	// values. It returns nil for a collection that was never declared.
	Filter(entity, key string, values ...any) []Record

	// Update locates the existing record by record's idAttr value and merges
	// record's attributes into it in place, keeping its position. ok is false
	// when no record matches; nothing is written in that case.
	Update(entity string, record Record, idAttr string) (Record, bool)

	// Delete removes the one record whose idAttr attribute equals value.
	// It is a no-op when nothing matches.
	Delete(entity, idAttr string, value any)

	// Count reports the number of records in the collection, 0 when it was
	// never declared.
	Count(entity string) int
}
