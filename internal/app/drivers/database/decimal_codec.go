package database

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// NewBillingRegistry returns the default bson registry extended with a codec
// for decimal.Decimal. Amounts are written as Decimal128 and read back from
// Decimal128, doubles, integers or numeric strings.
func NewBillingRegistry() *bsoncodec.Registry {
	registry := bson.NewRegistry()
	registry.RegisterTypeEncoder(decimalType, bsoncodec.ValueEncoderFunc(encodeDecimal))
	registry.RegisterTypeDecoder(decimalType, bsoncodec.ValueDecoderFunc(decodeDecimal))
	return registry
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{Name: "DecimalEncodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}
	value := val.Interface().(decimal.Decimal)
	decimal128, err := primitive.ParseDecimal128(value.String())
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(decimal128)
}

func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "DecimalDecodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}

	var (
		value decimal.Decimal
		err   error
	)
	switch vr.Type() {
	case bsontype.Decimal128:
		var decimal128 primitive.Decimal128
		decimal128, err = vr.ReadDecimal128()
		if err == nil {
			value, err = decimal.NewFromString(decimal128.String())
		}
	case bsontype.Double:
		var float float64
		float, err = vr.ReadDouble()
		value = decimal.NewFromFloat(float)
	case bsontype.Int32:
		var integer int32
		integer, err = vr.ReadInt32()
		value = decimal.NewFromInt32(integer)
	case bsontype.Int64:
		var integer int64
		integer, err = vr.ReadInt64()
		value = decimal.NewFromInt(integer)
	case bsontype.String:
		var text string
		text, err = vr.ReadString()
		if err == nil && text != "" {
			value, err = decimal.NewFromString(text)
		}
	case bsontype.Null:
		err = vr.ReadNull()
	case bsontype.Undefined:
		err = vr.ReadUndefined()
	default:
		return fmt.Errorf("cannot decode %v into decimal.Decimal", vr.Type())
	}
	if err != nil {
		return err
	}

	val.Set(reflect.ValueOf(value))
	return nil
}
