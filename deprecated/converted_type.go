package deprecated

// ConvertedType is the legacy logical-type annotation carried on a
// SchemaElement, superseded by LogicalType but still written by this
// implementation for backwards compatibility with older readers.
type ConvertedType int8

const (
	UTF8 ConvertedType = iota
	Map
	MapKeyValue
	List
	Enum
	Decimal
	Date
	TimeMillis
	TimeMicros
	TimestampMillis
	TimestampMicros
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Json
	Bson
	Interval
)

func (t ConvertedType) String() string {
	switch t {
	case UTF8:
		return "UTF8"
	case Map:
		return "MAP"
	case MapKeyValue:
		return "MAP_KEY_VALUE"
	case List:
		return "LIST"
	case Enum:
		return "ENUM"
	case Decimal:
		return "DECIMAL"
	case Date:
		return "DATE"
	case TimeMillis:
		return "TIME_MILLIS"
	case TimeMicros:
		return "TIME_MICROS"
	case TimestampMillis:
		return "TIMESTAMP_MILLIS"
	case TimestampMicros:
		return "TIMESTAMP_MICROS"
	case Uint8:
		return "UINT_8"
	case Uint16:
		return "UINT_16"
	case Uint32:
		return "UINT_32"
	case Uint64:
		return "UINT_64"
	case Int8:
		return "INT_8"
	case Int16:
		return "INT_16"
	case Int32:
		return "INT_32"
	case Int64:
		return "INT_64"
	case Json:
		return "JSON"
	case Bson:
		return "BSON"
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN"
	}
}
