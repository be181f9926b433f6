package dictionary

// BuiltinVersion is the version the compiled-in dictionary registers under.
const BuiltinVersion = "FIX.4.4"

// Builtin returns a compiled-in FIX.4.4 subset covering the fields present in
// nearly every message. It backs demo mode and runs started without
// dictionary files.
func Builtin() *Dictionary {
	return build([]Field{
		{Number: "1", Name: "Account"},
		{Number: "6", Name: "AvgPx"},
		{Number: "8", Name: "BeginString"},
		{Number: "9", Name: "BodyLength"},
		{Number: "10", Name: "CheckSum"},
		{Number: "11", Name: "ClOrdID"},
		{Number: "14", Name: "CumQty"},
		{Number: "17", Name: "ExecID"},
		{Number: "31", Name: "LastPx"},
		{Number: "32", Name: "LastQty"},
		{Number: "34", Name: "MsgSeqNum"},
		{Number: "35", Name: "MsgType", Enums: []Enum{
			{Value: "0", Description: "Heartbeat"},
			{Value: "1", Description: "TestRequest"},
			{Value: "2", Description: "ResendRequest"},
			{Value: "3", Description: "Reject"},
			{Value: "4", Description: "SequenceReset"},
			{Value: "5", Description: "Logout"},
			{Value: "8", Description: "ExecutionReport"},
			{Value: "9", Description: "OrderCancelReject"},
			{Value: "A", Description: "Logon"},
			{Value: "D", Description: "NewOrderSingle"},
			{Value: "F", Description: "OrderCancelRequest"},
			{Value: "G", Description: "OrderCancelReplaceRequest"},
		}},
		{Number: "37", Name: "OrderID"},
		{Number: "38", Name: "OrderQty"},
		{Number: "39", Name: "OrdStatus", Enums: []Enum{
			{Value: "0", Description: "New"},
			{Value: "1", Description: "Partially filled"},
			{Value: "2", Description: "Filled"},
			{Value: "4", Description: "Canceled"},
			{Value: "5", Description: "Replaced"},
			{Value: "8", Description: "Rejected"},
			{Value: "A", Description: "Pending New"},
		}},
		{Number: "40", Name: "OrdType", Enums: []Enum{
			{Value: "1", Description: "Market"},
			{Value: "2", Description: "Limit"},
			{Value: "3", Description: "Stop"},
			{Value: "4", Description: "Stop limit"},
		}},
		{Number: "44", Name: "Price"},
		{Number: "49", Name: "SenderCompID"},
		{Number: "52", Name: "SendingTime"},
		{Number: "54", Name: "Side", Enums: []Enum{
			{Value: "1", Description: "Buy"},
			{Value: "2", Description: "Sell"},
			{Value: "5", Description: "Sell short"},
			{Value: "6", Description: "Sell short exempt"},
		}},
		{Number: "55", Name: "Symbol"},
		{Number: "56", Name: "TargetCompID"},
		{Number: "58", Name: "Text"},
		{Number: "59", Name: "TimeInForce", Enums: []Enum{
			{Value: "0", Description: "Day"},
			{Value: "1", Description: "Good Till Cancel"},
			{Value: "3", Description: "Immediate or Cancel"},
			{Value: "4", Description: "Fill or Kill"},
		}},
		{Number: "60", Name: "TransactTime"},
		{Number: "150", Name: "ExecType", Enums: []Enum{
			{Value: "0", Description: "New"},
			{Value: "4", Description: "Canceled"},
			{Value: "5", Description: "Replaced"},
			{Value: "8", Description: "Rejected"},
			{Value: "F", Description: "Trade"},
		}},
		{Number: "151", Name: "LeavesQty"},
	})
}
